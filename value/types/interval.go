package types

import (
	"strconv"
	"strings"
)

// monthsPerYear contains the number of months in a year.
const monthsPerYear = 12

// Interval represents the DuckDB INTERVAL type. Its three components are
// independently signed and never normalized against each other.
type Interval struct {
	Months int32
	Days   int32
	Micros int64
}

// String returns the DuckDB representation of iv, e.g.
// "1 year 2 months 3 days 04:05:06".
func (iv Interval) String() string {
	return IntervalString(iv.Months, iv.Days, iv.Micros)
}

// SQL returns iv as an INTERVAL literal.
func (iv Interval) SQL() string { return sqlLiteral("INTERVAL", iv.String()) }

// MarshalJSON implements the json.Marshaler interface.
func (iv Interval) MarshalJSON() ([]byte, error) { return quoteJSON(iv.String()), nil }

// IntervalString formats the components of an interval as DuckDB does.
// Months are split into years and months carrying the sign of months, and
// each non-zero component contributes a clause. The zero interval is
// "00:00:00".
func IntervalString(months, days int32, micros int64) string {
	parts := make([]string, 0, 4)
	if months != 0 {
		m := int64(months)
		if years := m / monthsPerYear; years != 0 {
			parts = append(parts, numberAndUnit(years, "year"))
		}
		if rest := m % monthsPerYear; rest != 0 {
			parts = append(parts, numberAndUnit(rest, "month"))
		}
	}
	if days != 0 {
		parts = append(parts, numberAndUnit(int64(days), "day"))
	}
	if micros != 0 {
		parts = append(parts, DurationString(micros))
	}
	if len(parts) == 0 {
		return "00:00:00"
	}
	return strings.Join(parts, " ")
}

// numberAndUnit formats value followed by unit, adding "s" to unit unless
// value is exactly 1.
func numberAndUnit(value int64, unit string) string {
	str := strconv.FormatInt(value, 10) + " " + unit
	if value != 1 {
		str += "s"
	}
	return str
}
