// Package cli implements the duckval command, which renders raw DuckDB
// values as DuckDB text.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	SQL     bool   // render SQL literals instead of display text

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the duckval CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:   "duckval",
		Short: "Render raw DuckDB values as text",
		Long: `Render the binary encodings of DuckDB temporal and bit string values
exactly as DuckDB displays them, or as SQL literals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf(
					"invalid format %q: must be one of %v", opts.Format, ValidFormats,
				))
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.SQL, "sql", false, "output SQL literals")

	cmd.AddCommand(NewDateCommand(opts))
	cmd.AddCommand(NewTimeCommand(opts))
	cmd.AddCommand(NewTimeTZCommand(opts))
	cmd.AddCommand(NewTimestampCommand(opts))
	cmd.AddCommand(NewIntervalCommand(opts))
	cmd.AddCommand(NewBitCommand(opts))

	return cmd
}

// formatter returns an OutputFormatter writing to the output of cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// parseInt parses arg as a base 10 integer of bitSize bits, returning a
// usage ExitError naming what on failure.
func parseInt(arg, what string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, bitSize)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid %s %q", what, arg), err)
	}
	return n, nil
}
