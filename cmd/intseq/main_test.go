package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samcharles93/intseq/internal/expand"
	"github.com/samcharles93/intseq/internal/logger"
	"github.com/samcharles93/intseq/internal/oeis"
	"github.com/samcharles93/intseq/internal/parser"
	"github.com/samcharles93/intseq/internal/sequence"
)

// The CLI binds flags to package variables, so these tests do not run in
// parallel.

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"INTSEQ_OEIS_URL", "INTSEQ_OFFLINE", "INTSEQ_TIMEOUT", "INTSEQ_MAX_TERMS"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)
	err := app.Run(context.Background(), append([]string{"intseq"}, args...))
	return stdout.String(), stderr.String(), err
}

func isolateConfig(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("INTSEQ_CONFIG", path)
}

func TestExpandCommand(t *testing.T) {
	isolateConfig(t, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "array", args: []string{"expand", "--offline", "1, 2..5"}, want: "[1,2,3,4]\n"},
		{name: "joined args", args: []string{"expand", "--offline", "3,", "6..=12"}, want: "[3,6,9,12]\n"},
		{name: "go", args: []string{"expand", "--offline", "-f", "go", "3, 6..=12"}, want: "[]int64{3, 6, 9, 12}\n"},
		{name: "lines", args: []string{"expand", "--offline", "--format", "lines", "1..4"}, want: "1\n2\n3\n"},
		{name: "json empty", args: []string{"expand", "--offline", "--format", "json", "5..5"}, want: "[]\n"},
		{name: "negative after terminator", args: []string{"expand", "--offline", "--", "-3..2"}, want: "[-3,-2,-1,0,1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, "", tt.args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if out != tt.want {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestExpandCommandStdin(t *testing.T) {
	isolateConfig(t, "")

	out, _, err := runApp(t, "1, 2..5\n\n# comment\n10, 20..=50\n", "expand", "--offline")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "[1,2,3,4]\n[10,20,30,40,50]\n"; out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestExpandCommandExplain(t *testing.T) {
	isolateConfig(t, "")

	_, errOut, err := runApp(t, "", "expand", "--offline", "--explain", "1..3")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(errOut, "model: affine") {
		t.Fatalf("stderr = %q, want the model", errOut)
	}
}

func TestExpandCommandErrors(t *testing.T) {
	isolateConfig(t, "")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "offline lookup", args: []string{"expand", "--offline", "1, 2, 4..100"}, want: sequence.ErrNoModel},
		{name: "syntax", args: []string{"expand", "--offline", "1, 2"}, want: parser.ErrSyntax},
		{name: "degenerate", args: []string{"expand", "--offline", "5..1"}, want: sequence.ErrDegenerate},
		{name: "default term limit", args: []string{"expand", "--offline", "0..9223372036854775807"}, want: sequence.ErrTooManyTerms},
		{name: "term limit flag", args: []string{"expand", "--offline", "--max-terms", "3", "1..10"}, want: sequence.ErrTooManyTerms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runApp(t, "", tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, _, err := runApp(t, "", "expand", "--offline", "--format", "xml", "1..3"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestExpandCommandConfigFile(t *testing.T) {
	isolateConfig(t, "offline: true\nformat: go\n")

	out, _, err := runApp(t, "", "expand", "1, 2..5")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "[]int64{1, 2, 3, 4}\n"; out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}

	out, _, err = runApp(t, "", "expand", "--format", "array", "1, 2..5")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "[1,2,3,4]\n"; out != want {
		t.Fatalf("flag should win over config: output = %q, want %q", out, want)
	}

	_, _, err = runApp(t, "", "expand", "1, 2, 4..100")
	if !errors.Is(err, sequence.ErrNoModel) {
		t.Fatalf("offline from config: err = %v, want %v", err, sequence.ErrNoModel)
	}
}

func TestExpandCommandMaxTermsConfig(t *testing.T) {
	isolateConfig(t, "offline: true\nmax_terms: 2\n")

	if _, _, err := runApp(t, "", "expand", "1..4"); !errors.Is(err, sequence.ErrTooManyTerms) {
		t.Fatalf("max_terms from config: err = %v, want %v", err, sequence.ErrTooManyTerms)
	}
	out, _, err := runApp(t, "", "expand", "--max-terms", "0", "1..4")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "[1,2,3]\n"; out != want {
		t.Fatalf("flag should win over config: output = %q, want %q", out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t, "")

	out, _, err := runApp(t, "", "version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "version:") {
		t.Fatalf("output = %q", out)
	}
}

func TestReplCommand(t *testing.T) {
	isolateConfig(t, "")

	out, _, err := runApp(t, "1..3\nquit\n4..6\n", "repl", "--offline")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "[1,2]\n"; out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRepl(t *testing.T) {
	input := strings.Join([]string{
		"1, 2..5",
		":format go",
		"3, 6..=12",
		"",
		"1 ? 2",
		":format xml",
		":nope",
		"exit",
		"1..3",
	}, "\n")

	var out bytes.Buffer
	r := &repl{
		expander: expand.New(nil, logger.Discard()),
		in:       newPlainReader(strings.NewReader(input)),
		out:      &out,
	}
	if err := r.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out.String())
	}
	if lines[0] != "[1,2,3,4]" || lines[1] != "format: go" || lines[2] != "[]int64{3, 6, 9, 12}" {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	for _, l := range lines[3:] {
		if !strings.HasPrefix(l, "error: ") {
			t.Fatalf("line %q should report an error", l)
		}
	}
}

func TestNewExpanderOffline(t *testing.T) {
	offline = true
	t.Cleanup(func() { offline = false })
	if db := newExpander(context.Background()).Inferrer.DB; db != nil {
		t.Fatalf("offline expander has database %T", db)
	}

	offline = false
	oeisURL = "http://127.0.0.1:1"
	if _, ok := newExpander(context.Background()).Inferrer.DB.(*oeis.Client); !ok {
		t.Fatal("online expander should query the OEIS client")
	}
}
