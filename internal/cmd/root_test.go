package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

func TestSetVersionInfo(t *testing.T) {
	// Save original values
	origVersion := version
	origCommit := commit
	origDate := date
	defer func() {
		version = origVersion
		commit = origCommit
		date = origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2025-01-01")

	if version != "1.2.3" {
		t.Errorf("version = %q, want '1.2.3'", version)
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want 'abc123'", commit)
	}
	if date != "2025-01-01" {
		t.Errorf("date = %q, want '2025-01-01'", date)
	}
}

func TestValidateArgs(t *testing.T) {
	if err := validateArgs(rootCmd, []string{"in.md", "out.html"}); err != nil {
		t.Fatalf("two args: %v", err)
	}
	if err := validateArgs(rootCmd, []string{"in.md", "out.html", "extra"}); err != nil {
		t.Fatalf("three args should be accepted: %v", err)
	}
	if err := validateArgs(rootCmd, []string{"in.md"}); err == nil {
		t.Fatal("one arg should be rejected")
	}
	if err := validateArgs(rootCmd, nil); err == nil {
		t.Fatal("zero args should be rejected")
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatal("a bytes.Buffer must not look like a terminal")
	}
}

type errorWriteCloser struct{ err error }

func (w errorWriteCloser) Write(p []byte) (int, error) { return 0, w.err }
func (w errorWriteCloser) Close() error                { return nil }

func TestRunConvertSinkOpenError(t *testing.T) {
	restore := snapshotCLIState()
	defer restore()

	openErr := errors.New("permission denied")
	openOutputFunc = func(path string) (io.WriteCloser, error) { return nil, openErr }

	input := writeTempInput(t, "# H\n")
	err := runConvert(context.Background(), input, "out.html")
	if !errors.Is(err, openErr) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestRunConvertSinkWriteError(t *testing.T) {
	restore := snapshotCLIState()
	defer restore()

	writeErr := errors.New("disk full")
	openOutputFunc = func(path string) (io.WriteCloser, error) {
		return errorWriteCloser{err: writeErr}, nil
	}

	input := writeTempInput(t, "# H\n")
	err := runConvert(context.Background(), input, "out.html")
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected write error, got %v", err)
	}
}
