package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/md2html/internal/output"
)

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid --error-format %q (expected auto|text|json|yaml)", format)
	}
}

// effectiveErrorFormat resolves "auto" against the error stream: text
// for an interactive terminal, json for pipes and files.
func effectiveErrorFormat(format string, stderr io.Writer) output.Format {
	trimmed := strings.ToLower(strings.TrimSpace(format))
	if trimmed == "" || trimmed == "auto" {
		if isTerminal(stderr) {
			return output.FormatText
		}
		return output.FormatJSON
	}
	parsed, err := output.ParseFormat(trimmed)
	if err != nil {
		return output.FormatText
	}
	return parsed
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch output.FormatFromContext(ctx) {
	case output.FormatJSON:
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case output.FormatYAML:
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(stderrFromContext(ctx), err)
}

func buildErrorEnvelope(err error) map[string]interface{} {
	errMap := map[string]interface{}{
		"message":  err.Error(),
		"category": "system",
		"type":     "error",
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		errMap["type"] = "usage"
		errMap["category"] = "user"
	}

	var missingErr *MissingInputError
	if errors.As(err, &missingErr) {
		errMap["type"] = "missing_input"
		errMap["category"] = "user"
	}

	return map[string]interface{}{"error": errMap}
}
