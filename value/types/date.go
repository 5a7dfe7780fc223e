package types

import (
	"math"
	"time"
)

// Date represents the DuckDB DATE type: the number of days since
// 1970-01-01 in the proleptic Gregorian calendar.
type Date int32

const (
	// DateInfinity is the DuckDB date representing infinity.
	DateInfinity Date = math.MaxInt32
	// DateNegativeInfinity is the DuckDB date representing -infinity.
	DateNegativeInfinity Date = -math.MaxInt32
)

// String returns the DuckDB representation of d, e.g. "2024-04-29" or
// "0044-03-15 (BC)".
func (d Date) String() string {
	switch d {
	case DateInfinity:
		return infinity
	case DateNegativeInfinity:
		return negativeInfinity
	}
	return DateString(int32(d))
}

// SQL returns d as a DATE literal.
func (d Date) SQL() string { return sqlLiteral("DATE", d.String()) }

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the DuckDB date format.
func (d Date) MarshalJSON() ([]byte, error) { return quoteJSON(d.String()), nil }

// DateString formats days since 1970-01-01 as a DuckDB date string.
//
// The day count is first split into whole 400-year cycles, which always
// contain 146097 days, and a remainder of less than 400 years. The remainder
// is resolved to a calendar date by package time, then the years of the
// cycles are added back; month and day are unaffected by whole cycles.
func DateString(days int32) string {
	n := int64(days)
	sign := int64(1)
	if n < 0 {
		sign = -1
	}
	cycles := abs(n) / daysPer400Years
	rest := sign * (abs(n) % daysPer400Years)

	t := time.Unix(rest*secondsPerDay, 0).UTC()
	year := int64(t.Year()) + sign*cycles*400
	return DateStringFromYMD(year, int(t.Month()), t.Day())
}

// DateStringFromYMD formats an astronomical year, month, and day as a DuckDB
// date string. Year 0 is 1 BC, year -1 is 2 BC, and so on; there is no year
// zero in the output.
func DateStringFromYMD(year int64, month, day int) string {
	b := make([]byte, 0, len("0000-00-00 (BC)"))
	return string(appendDate(b, year, month, day))
}

// appendDate appends the DuckDB date format of year, month, and day to b.
func appendDate(b []byte, year int64, month, day int) []byte {
	bc := year <= 0
	if bc {
		year = 1 - year
	}
	b = appendPadded(b, year, 4)
	b = append(b, '-')
	b = appendPadded(b, month, 2)
	b = append(b, '-')
	b = appendPadded(b, day, 2)
	if bc {
		b = append(b, " (BC)"...)
	}
	return b
}
