package cmd

import "fmt"

// UsageError reports an invocation with too few positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected <input.md> and <output.html> arguments, got %d", e.Got)
}

// MissingInputError reports an input path that does not name an existing
// regular file. The capitalized wording is part of the CLI contract.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "Missing " + e.Path
}
