// Package types provides DuckDB-compatible temporal data types and the
// functions that render their binary encodings as text.
//
// It makes every effort to duplicate the output of DuckDB itself, so that
// values decoded from the wire display exactly as they would in the DuckDB
// shell, including BC years, timezone offsets with minute and second
// components, and the infinity timestamps.
package types

import (
	"errors"
)

// ErrValue wraps errors returned by the types package.
var ErrValue = errors.New("value")

const (
	microsPerMilli  = 1000
	nanosPerMicro   = 1000
	microsPerSecond = 1000 * microsPerMilli
	secondsPerMin   = 60
	minsPerHour     = 60
	secondsPerHour  = secondsPerMin * minsPerHour
	secondsPerDay   = 24 * secondsPerHour
	microsPerMinute = secondsPerMin * microsPerSecond
	microsPerDay    = secondsPerDay * microsPerSecond

	// daysPer400Years is the number of days in 400 Gregorian years, the
	// shortest span with a fixed day count.
	daysPer400Years = 146097
)

// Value defines the interface for all DuckDB temporal data types.
type Value interface {
	// String returns the DuckDB display format of the value.
	String() string

	// SQL returns a DuckDB SQL literal for the value.
	SQL() string
}

// sqlLiteral returns str quoted as a SQL string literal prefixed with
// typeName.
func sqlLiteral(typeName, str string) string {
	b := make([]byte, 0, len(typeName)+len(str)+3)
	b = append(b, typeName...)
	b = append(b, ' ', '\'')
	b = append(b, str...)
	b = append(b, '\'')
	return string(b)
}

// quoteJSON returns str as a JSON string. DuckDB output never contains
// characters that need escaping.
func quoteJSON(str string) []byte {
	b := make([]byte, 0, len(str)+len(`""`))
	b = append(b, '"')
	b = append(b, str...)
	b = append(b, '"')
	return b
}
