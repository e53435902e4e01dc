package cmd

import (
	"context"
	"io"
	"os"
)

type streamsKey struct{}

// cliStreams carries the command's stdin/stdout/stderr through context
// so tests can substitute buffers.
type cliStreams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func withIO(ctx context.Context, in io.Reader, out, err io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, cliStreams{in: in, out: out, err: err})
}

func stdinFromContext(ctx context.Context) io.Reader {
	if ctx != nil {
		if v, ok := ctx.Value(streamsKey{}).(cliStreams); ok && v.in != nil {
			return v.in
		}
	}
	return os.Stdin
}

func stdoutFromContext(ctx context.Context) io.Writer {
	if ctx != nil {
		if v, ok := ctx.Value(streamsKey{}).(cliStreams); ok && v.out != nil {
			return v.out
		}
	}
	return os.Stdout
}

func stderrFromContext(ctx context.Context) io.Writer {
	if ctx != nil {
		if v, ok := ctx.Value(streamsKey{}).(cliStreams); ok && v.err != nil {
			return v.err
		}
	}
	return os.Stderr
}
