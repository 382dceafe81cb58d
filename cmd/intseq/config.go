package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/intseq/internal/logger"
)

// Config represents the intseq configuration file
// (~/.config/intseq/config.yaml, or $INTSEQ_CONFIG).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	OEISURL string         `yaml:"oeis_url"`
	Timeout *time.Duration `yaml:"timeout"`
	Offline *bool          `yaml:"offline"`
	Format  string         `yaml:"format"`

	MaxTerms *int `yaml:"max_terms"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	if p := os.Getenv("INTSEQ_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "intseq", "config.yaml")
}

// LoadConfig reads the config file. A missing file yields a zero Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyLookupConfig applies config file defaults to the lookup and output
// flags that were not set explicitly.
func applyLookupConfig(c *cli.Command, cfg Config) {
	if cfg.OEISURL != "" && !c.IsSet("oeis-url") {
		oeisURL = cfg.OEISURL
	}
	if cfg.Timeout != nil && !c.IsSet("timeout") {
		timeout = *cfg.Timeout
	}
	if cfg.Offline != nil && !c.IsSet("offline") {
		offline = *cfg.Offline
	}
	if cfg.Format != "" && !c.IsSet("format") {
		outputFormat = cfg.Format
	}
	if cfg.MaxTerms != nil && !c.IsSet("max-terms") {
		maxTerms = *cfg.MaxTerms
	}
}

func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// setup is the Before hook of every subcommand: it loads the config file,
// fills in unset flags and installs the logger in the context.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := LoadConfig(configPath())
	if err != nil {
		return ctx, err
	}
	applyLoggingConfig(cmd, cfg)
	applyLookupConfig(cmd, cfg)
	if cfg.ServerAddress != "" && !cmd.IsSet("addr") {
		serverAddr = cfg.ServerAddress
	}

	level := logger.ParseLevel(logLevel)
	if debug {
		level = slog.LevelDebug
	}
	log, err := logger.New(errWriter(cmd), logFormat, level)
	if err != nil {
		return ctx, err
	}
	return logger.WithContext(ctx, log), nil
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
