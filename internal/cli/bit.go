package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theory/duckvalues/value/bit"
)

// BitOptions holds flags for the bit encode command.
type BitOptions struct {
	*RootOptions
	On string // character that marks a set bit
}

// NewBitCommand creates the bit command and its subcommands.
func NewBitCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bit",
		Short: "Encode and decode DuckDB BIT values",
	}

	cmd.AddCommand(newBitEncodeCommand(&BitOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newBitDecodeCommand(rootOpts))

	return cmd
}

func newBitEncodeCommand(opts *BitOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <bits>...",
		Short: "Encode bit strings as hex DuckDB BIT buffers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.On) != 1 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --on %q: must be one character", opts.On))
			}

			values := make([]Rendered, 0, len(args))
			for _, arg := range args {
				v := bit.FromString(arg, opts.On[0])
				text := hex.EncodeToString(v.Bytes())
				opts.logger.Debug("encoded bits", "input", arg, "padding", v.Padding(), "length", v.Len())
				values = append(values, Rendered{Input: arg, Text: text})
			}
			return opts.formatter(cmd).Success(values)
		},
	}

	cmd.Flags().StringVar(&opts.On, "on", "1", "character that marks a set bit")

	return cmd
}

func newBitDecodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode hex DuckDB BIT buffers to bit strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]Rendered, 0, len(args))
			for _, arg := range args {
				data, err := hex.DecodeString(arg)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("invalid hex %q", arg), err)
				}
				v, err := bit.FromBytes(data)
				if err != nil {
					return WrapExitError(ExitFailure, "cannot decode bit string", err)
				}

				text := v.String()
				if opts.SQL {
					text = v.SQL()
				}
				opts.logger.Debug("decoded bits", "input", arg, "text", text)
				values = append(values, Rendered{Input: arg, Text: text})
			}
			return opts.formatter(cmd).Success(values)
		},
	}
}
