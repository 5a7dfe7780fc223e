package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	_ "time/tzdata"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the duckval command with args and returns its stdout and
// stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "duckval", cmd.Use)
	assert.Contains(t, cmd.Long, "SQL literals")
}

func TestCommandPresence(t *testing.T) {
	t.Parallel()
	cmd := NewRootCommand()

	for _, path := range [][]string{
		{"date"}, {"time"}, {"timetz"}, {"timestamp"}, {"interval"},
		{"bit"}, {"bit", "encode"}, {"bit", "decode"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	sqlFlag := cmd.PersistentFlags().Lookup("sql")
	require.NotNil(t, sqlFlag)
	assert.Equal(t, "false", sqlFlag.DefValue)
}

func TestGolden(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
	}{
		{"timestamp_text", []string{
			"timestamp", "--", "0", "1612325106007800", "-1",
			"9223372036854775807", "-9223372036854775807",
		}},
		{"timestamptz_json", []string{
			"--format", "json", "timestamp", "--tz", "America/New_York",
			"1612325106007800", "1627963506007800",
		}},
		{"date_sql", []string{"--sql", "date", "--", "0", "-719163", "106751991"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stdout, _, err := execute(t, tc.args...)
			require.NoError(t, err)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tc.name, []byte(stdout))
		})
	}
}

func TestCommands(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		exp  string
	}{
		{"date", []string{"date", "0"}, "1970-01-01\n"},
		{"date_bc", []string{"date", "--", "-719528"}, "0001-01-01 (BC)\n"},
		{"date_infinity", []string{"date", "2147483647"}, "infinity\n"},
		{"time", []string{"time", "45296789000"}, "12:34:56.789\n"},
		{"time_sql", []string{"--sql", "time", "0"}, "TIME '00:00:00'\n"},
		{"timetz", []string{"timetz", "45296000000", "19800"}, "12:34:56+05:30\n"},
		{"timetz_neg_offset", []string{"timetz", "--", "45296000000", "-17762"}, "12:34:56-04:56:02\n"},
		{"timetz_bits", []string{"timetz", "--bits", "759940775936037799"}, "12:34:56+05:30\n"},
		{"timestamp_s", []string{"timestamp", "--unit", "s", "1612325106"}, "2021-02-03 04:05:06\n"},
		{"timestamp_ms", []string{"timestamp", "-u", "ms", "1612325106007"}, "2021-02-03 04:05:06.007\n"},
		{"timestamp_ns", []string{"timestamp", "-u", "ns", "--", "-1"}, "1970-01-01 00:00:00\n"},
		{"timestamp_sql", []string{"--sql", "timestamp", "0"}, "TIMESTAMP '1970-01-01 00:00:00'\n"},
		{"timestamptz_utc_sql", []string{"--sql", "timestamp", "--tz", "UTC", "0"}, "TIMESTAMPTZ '1970-01-01 00:00:00+00'\n"},
		{"timestamptz_chatham", []string{"timestamp", "--tz", "Pacific/Chatham", "1612325106007800"}, "2021-02-03 17:50:06.0078+13:45\n"},
		{"timestamptz_max_finite", []string{"timestamp", "--tz", "Asia/Tokyo", "9223372036854775806"}, "294247-01-10 13:00:54.775806+09\n"},
		{"interval", []string{"interval", "14", "0", "0"}, "1 year 2 months\n"},
		{"interval_zero", []string{"interval", "0", "0", "0"}, "00:00:00\n"},
		{"interval_sql", []string{"--sql", "interval", "--", "-1", "2", "-1500000"}, "INTERVAL '-1 months 2 days -00:00:01.5'\n"},
		{"bit_encode", []string{"bit", "encode", "101", "10110011"}, "05fd\n00b3\n"},
		{"bit_encode_on", []string{"bit", "encode", "--on", "x", "x.x"}, "05fd\n"},
		{"bit_decode", []string{"bit", "decode", "05fd", "07ff01"}, "101\n100000001\n"},
		{"bit_decode_sql", []string{"--sql", "bit", "decode", "00b3"}, "'10110011'::BITSTRING\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	t.Parallel()
	stdout, _, err := execute(t, "--format", "json", "bit", "decode", "05fd")
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"ok","data":[{"input":"05fd","text":"101"}]}`, stdout)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []Rendered{{Input: "05fd", Text: "101"}}, resp.Data)
}

func TestVerbose(t *testing.T) {
	t.Parallel()
	stdout, stderr, err := execute(t, "-v", "date", "1")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-02\n", stdout)
	assert.Contains(t, stderr, "rendered value")
	assert.Contains(t, stderr, "input=1")
	assert.Contains(t, stderr, "text=1970-01-02")
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"bad_format", []string{"--format", "yaml", "date", "0"}, ExitCommandError, `invalid format "yaml"`},
		{"bad_days", []string{"date", "soon"}, ExitCommandError, `invalid day count "soon"`},
		{"days_overflow", []string{"date", "2147483648"}, ExitCommandError, "invalid day count"},
		{"timetz_args", []string{"timetz", "1"}, ExitCommandError, "timetz requires"},
		{"timetz_bits", []string{"timetz", "--bits", "nope"}, ExitCommandError, `invalid timetz bits "nope"`},
		{"bad_unit", []string{"timestamp", "--unit", "ps", "0"}, ExitCommandError, `invalid unit "ps"`},
		{"tz_unit", []string{"timestamp", "--unit", "s", "--tz", "UTC", "0"}, ExitCommandError, "--tz requires --unit us"},
		{"bad_zone", []string{"timestamp", "--tz", "Not/A_Zone", "0"}, ExitFailure, "cannot render timestamptz"},
		{"bad_on", []string{"bit", "encode", "--on", "xy", "1"}, ExitCommandError, "must be one character"},
		{"bad_hex", []string{"bit", "decode", "zz"}, ExitCommandError, `invalid hex "zz"`},
		{"bad_padding", []string{"bit", "decode", "08ff"}, ExitFailure, "bit: invalid padding 8"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Equal(t, tc.code, GetExitCode(err))
		})
	}
}

func TestGetExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "usage")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "wrapped", assert.AnError)))
	assert.ErrorIs(t, WrapExitError(ExitFailure, "wrapped", assert.AnError), assert.AnError)

	// The first ExitError in a chain decides the status.
	chained := fmt.Errorf("render: %w", NewExitError(ExitCommandError, "usage"))
	assert.Equal(t, ExitCommandError, GetExitCode(chained))

	assert.EqualError(t, NewExitError(ExitCommandError, "usage"), "usage")
	assert.EqualError(t, WrapExitError(ExitFailure, "wrapped", assert.AnError), "wrapped: "+assert.AnError.Error())
}
