package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/md2html/internal/markdown"
	"github.com/salmonumbrella/md2html/internal/output"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Global flags
var errorFmt string

var rootCmd = &cobra.Command{
	Use:   "md2html <input.md> <output.html>",
	Short: "Convert restricted Markdown to HTML",
	Long: `md2html converts a restricted Markdown dialect to HTML.

It understands headings, flat "- " and "* " lists, paragraphs joined
with <br/>, bold (**) and emphasis (__) markup, and two bracket
substitutions: [[text]] is replaced by the MD5 digest of text, and
every C or c is removed from ((text)).

HTML is appended to the output file, never overwritten; pass - as the
output path to write to stdout instead.`,
	Version:       version,
	SilenceErrors: true,
	Args:          validateArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}
		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, effectiveErrorFormat(errorFmt, cmd.ErrOrStderr()))
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are validated by now; runtime failures should not
		// re-print the usage block.
		cmd.SilenceUsage = true
		return runConvert(cmd.Context(), args[0], args[1])
	},
}

// validateArgs requires the two positional paths. Extra arguments are
// ignored, matching the historical behavior of the tool.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return &UsageError{Got: len(args)}
	}
	return nil
}

// runConvert performs the pre-flight input check, opens the append-only
// sink, and streams the conversion.
func runConvert(ctx context.Context, inputPath, outputPath string) error {
	info, err := statFunc(inputPath)
	if err != nil || !info.Mode().IsRegular() {
		return &MissingInputError{Path: inputPath}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := openSink(ctx, outputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", outputPath, err)
	}

	if err := markdown.Convert(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// openSink returns the append-only destination, or stdout for "-".
func openSink(ctx context.Context, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdoutFromContext(ctx)}, nil
	}
	return openOutputFunc(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(rootCmd.Context(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("md2html version %s (commit: %s, built: %s)\n", version, commit, date))

	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
