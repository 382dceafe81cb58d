package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "oeis_url: http://127.0.0.1:9999\n" +
		"timeout: 5s\n" +
		"offline: false\n" +
		"format: lines\n" +
		"max_terms: 500\n" +
		"log_level: debug\n" +
		"server_address: 0.0.0.0:9000\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	timeout := 5 * time.Second
	offline := false
	limit := 500
	want := Config{
		OEISURL:       "http://127.0.0.1:9999",
		Timeout:       &timeout,
		Offline:       &offline,
		Format:        "lines",
		MaxTerms:      &limit,
		LogLevel:      "debug",
		ServerAddress: "0.0.0.0:9000",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.yaml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q): %v", path, err)
		}
		if diff := cmp.Diff(Config{}, cfg); diff != "" {
			t.Fatalf("LoadConfig(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeout: [1, 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv("INTSEQ_CONFIG", "/tmp/intseq-test.yaml")
	if got := configPath(); got != "/tmp/intseq-test.yaml" {
		t.Fatalf("configPath = %q", got)
	}
}
