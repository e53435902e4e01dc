package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestIOFromContext(t *testing.T) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}

	ctx := withIO(context.Background(), in, out, errBuf)

	if got := stdinFromContext(ctx); got != in {
		t.Error("stdinFromContext did not return the stored reader")
	}
	if got := stdoutFromContext(ctx); got != out {
		t.Error("stdoutFromContext did not return the stored writer")
	}
	if got := stderrFromContext(ctx); got != errBuf {
		t.Error("stderrFromContext did not return the stored writer")
	}
}

func TestIOFromContextDefaults(t *testing.T) {
	ctx := context.Background()

	if got := stdinFromContext(ctx); got != os.Stdin {
		t.Error("expected os.Stdin fallback")
	}
	if got := stdoutFromContext(ctx); got != os.Stdout {
		t.Error("expected os.Stdout fallback")
	}
	if got := stderrFromContext(nil); got != os.Stderr {
		t.Error("expected os.Stderr fallback")
	}
}
