package cmd

import (
	"io"
	"os"
)

// Seams for tests to intercept filesystem access.
var (
	statFunc       = os.Stat
	openOutputFunc = func(path string) (io.WriteCloser, error) {
		// Append, never truncate: repeated runs accumulate output.
		return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}
)
