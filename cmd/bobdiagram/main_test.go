package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesSVGToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("+--+\n|  |\n+--+\n")

	code := run([]string{"bobdiagram"}, stdin, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "<svg") {
		t.Fatalf("expected svg on stdout, got %s", stdout.String())
	}
}

func TestRunWritesSVGToOutputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.svg")

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("+--+\n|  |\n+--+\n")

	code := run([]string{"bobdiagram", "-o", out}, stdin, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d, stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
}

func TestRunNoStdinNoInputFlagIsRuntimeError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bobdiagram"}, nil, &stdout, &stderr)
	if code != exitInputError {
		t.Fatalf("expected exit %d, got %d", exitInputError, code)
	}
}

func TestRunBadHexColorIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("+--+\n|  |\n+--+\n")
	code := run([]string{"bobdiagram", "--stroke-color", "#zzzzzz"}, stdin, &stdout, &stderr)
	if code != exitInputError {
		t.Fatalf("expected exit %d, got %d", exitInputError, code)
	}
}

func TestRunVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bobdiagram", "-v"}, nil, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), version) {
		t.Fatalf("expected version string in output, got %s", stdout.String())
	}
}

func TestRunBuildSubcommandConvertsGlob(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.bob"), []byte("+--+\n|  |\n+--+\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "svg")

	var stdout, stderr bytes.Buffer
	code := run([]string{"bobdiagram", "build", "--input", filepath.Join(dir, "*.bob"), "--outdir", outDir}, nil, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d, stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(outDir, "a.svg")); err != nil {
		t.Fatalf("expected a.svg to be written: %v", err)
	}
}

func TestRunBuildSubcommandNoMatchesIsRuntimeError(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"bobdiagram", "build", "--input", filepath.Join(dir, "*.bob")}, nil, &stdout, &stderr)
	if code != exitInputError {
		t.Fatalf("expected exit %d, got %d", exitInputError, code)
	}
}
