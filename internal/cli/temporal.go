package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theory/duckvalues/value/types"
)

// render returns the display text of v, or its SQL literal if opts.SQL.
func (o *RootOptions) render(v types.Value) string {
	if o.SQL {
		return v.SQL()
	}
	return v.String()
}

// renderEach parses each arg with parse and renders the result.
func (o *RootOptions) renderEach(
	cmd *cobra.Command,
	args []string,
	parse func(arg string) (types.Value, error),
) error {
	values := make([]Rendered, 0, len(args))
	for _, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return err
		}
		text := o.render(v)
		o.logger.Debug("rendered value", "command", cmd.Name(), "input", arg, "text", text)
		values = append(values, Rendered{Input: arg, Text: text})
	}
	return o.formatter(cmd).Success(values)
}

// NewDateCommand creates the date command.
func NewDateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date <days>...",
		Short: "Render DATE values from days since 1970-01-01",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.renderEach(cmd, args, func(arg string) (types.Value, error) {
				n, err := parseInt(arg, "day count", 32)
				return types.Date(n), err
			})
		},
	}
}

// NewTimeCommand creates the time command.
func NewTimeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "time <micros>...",
		Short: "Render TIME values from microseconds since midnight",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.renderEach(cmd, args, func(arg string) (types.Value, error) {
				n, err := parseInt(arg, "microseconds", 64)
				return types.Time(n), err
			})
		},
	}
}

// TimeTZOptions holds flags for the timetz command.
type TimeTZOptions struct {
	*RootOptions
	Bits bool // arguments are 64-bit encoded TIMETZ values
}

// NewTimeTZCommand creates the timetz command.
func NewTimeTZCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimeTZOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "timetz <micros> <offset-seconds> | --bits <encoded>...",
		Short: "Render TIMETZ values",
		Long: `Render a TIMETZ value from microseconds since midnight and an offset in
seconds east of UTC, or with --bits, from DuckDB's 64-bit encoding.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Bits {
				return opts.renderEach(cmd, args, func(arg string) (types.Value, error) {
					bits, err := strconv.ParseUint(arg, 10, 64)
					if err != nil {
						return nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid timetz bits %q", arg), err)
					}
					return types.NewTimeTZFromBits(bits), nil
				})
			}

			if len(args) != 2 {
				return NewExitError(ExitCommandError, "timetz requires <micros> <offset-seconds>")
			}
			micros, err := parseInt(args[0], "microseconds", 64)
			if err != nil {
				return err
			}
			offset, err := parseInt(args[1], "offset", 32)
			if err != nil {
				return err
			}
			tz := types.TimeTZ{Micros: micros, Offset: int32(offset)}
			return opts.formatter(cmd).Success([]Rendered{{
				Input: args[0] + " " + args[1],
				Text:  opts.render(tz),
			}})
		},
	}

	cmd.Flags().BoolVar(&opts.Bits, "bits", false, "arguments are DuckDB 64-bit TIMETZ encodings")

	return cmd
}

// ValidUnits defines the allowed timestamp units.
var ValidUnits = []string{"s", "ms", "us", "ns"}

// TimestampOptions holds flags for the timestamp command.
type TimestampOptions struct {
	*RootOptions
	Unit string // "s" | "ms" | "us" | "ns"
	TZ   string // time zone for TIMESTAMPTZ values
}

// NewTimestampCommand creates the timestamp command.
func NewTimestampCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimestampOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "timestamp <value>...",
		Short: "Render TIMESTAMP values from time since the Unix epoch",
		Long: `Render TIMESTAMP values from time since the Unix epoch in the unit selected
by --unit. With --tz, render microsecond TIMESTAMPTZ values in the named
IANA time zone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidUnits, opts.Unit) {
				return NewExitError(ExitCommandError, fmt.Sprintf(
					"invalid unit %q: must be one of %v", opts.Unit, ValidUnits,
				))
			}
			if opts.TZ != "" {
				return runTimestampTZ(cmd, opts, args)
			}
			return opts.renderEach(cmd, args, func(arg string) (types.Value, error) {
				n, err := parseInt(arg, "timestamp", 64)
				if err != nil {
					return nil, err
				}
				switch opts.Unit {
				case "s":
					return types.TimestampSeconds(n), nil
				case "ms":
					return types.TimestampMilliseconds(n), nil
				case "ns":
					return types.TimestampNanoseconds(n), nil
				default:
					return types.Timestamp(n), nil
				}
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Unit, "unit", "u", "us", "timestamp unit (s|ms|us|ns)")
	cmd.Flags().StringVar(&opts.TZ, "tz", "", "render TIMESTAMPTZ in this time zone")

	return cmd
}

func runTimestampTZ(cmd *cobra.Command, opts *TimestampOptions, args []string) error {
	if opts.Unit != "us" {
		return NewExitError(ExitCommandError, "--tz requires --unit us")
	}

	values := make([]Rendered, 0, len(args))
	for _, arg := range args {
		n, err := parseInt(arg, "timestamp", 64)
		if err != nil {
			return err
		}

		ts := types.TimestampTZ(n)
		var text string
		if opts.SQL {
			text, err = ts.SQLIn(types.DefaultResolver, opts.TZ)
		} else {
			text, err = ts.FormatIn(types.DefaultResolver, opts.TZ)
		}
		if err != nil {
			return WrapExitError(ExitFailure, "cannot render timestamptz", err)
		}
		opts.logger.Debug("rendered value", "command", cmd.Name(), "input", arg, "tz", opts.TZ, "text", text)
		values = append(values, Rendered{Input: arg, Text: text})
	}
	return opts.formatter(cmd).Success(values)
}

// NewIntervalCommand creates the interval command.
func NewIntervalCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interval <months> <days> <micros>",
		Short: "Render an INTERVAL value from its three components",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			months, err := parseInt(args[0], "months", 32)
			if err != nil {
				return err
			}
			days, err := parseInt(args[1], "days", 32)
			if err != nil {
				return err
			}
			micros, err := parseInt(args[2], "microseconds", 64)
			if err != nil {
				return err
			}
			iv := types.Interval{Months: int32(months), Days: int32(days), Micros: micros}
			return opts.formatter(cmd).Success([]Rendered{{
				Input: args[0] + " " + args[1] + " " + args[2],
				Text:  opts.render(iv),
			}})
		},
	}
}
