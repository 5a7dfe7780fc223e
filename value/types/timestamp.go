package types

import "math"

const (
	infinity         = "infinity"
	negativeInfinity = "-infinity"

	// timestampInfinity and timestampNegativeInfinity are the reserved
	// TIMESTAMP and TIMESTAMPTZ values for infinity.
	timestampInfinity         = math.MaxInt64
	timestampNegativeInfinity = -math.MaxInt64
)

// Timestamp represents the DuckDB TIMESTAMP type: microseconds since the
// Unix epoch, without time zone.
type Timestamp int64

const (
	// TimestampInfinity is the DuckDB timestamp representing infinity.
	TimestampInfinity Timestamp = timestampInfinity
	// TimestampNegativeInfinity is the DuckDB timestamp representing
	// -infinity.
	TimestampNegativeInfinity Timestamp = timestampNegativeInfinity
)

// String returns the DuckDB representation of ts, e.g.
// "2021-02-03 04:05:06.0078".
func (ts Timestamp) String() string { return TimestampString(int64(ts)) }

// SQL returns ts as a TIMESTAMP literal.
func (ts Timestamp) SQL() string { return sqlLiteral("TIMESTAMP", ts.String()) }

// MarshalJSON implements the json.Marshaler interface.
func (ts Timestamp) MarshalJSON() ([]byte, error) { return quoteJSON(ts.String()), nil }

// TimestampSeconds represents the DuckDB TIMESTAMP_S type: seconds since the
// Unix epoch.
type TimestampSeconds int64

// String returns the DuckDB representation of ts.
func (ts TimestampSeconds) String() string { return TimestampStringFromSeconds(int64(ts)) }

// SQL returns ts as a TIMESTAMP_S literal.
func (ts TimestampSeconds) SQL() string { return sqlLiteral("TIMESTAMP_S", ts.String()) }

// MarshalJSON implements the json.Marshaler interface.
func (ts TimestampSeconds) MarshalJSON() ([]byte, error) { return quoteJSON(ts.String()), nil }

// TimestampMilliseconds represents the DuckDB TIMESTAMP_MS type:
// milliseconds since the Unix epoch.
type TimestampMilliseconds int64

// String returns the DuckDB representation of ts.
func (ts TimestampMilliseconds) String() string {
	return TimestampStringFromMilliseconds(int64(ts))
}

// SQL returns ts as a TIMESTAMP_MS literal.
func (ts TimestampMilliseconds) SQL() string { return sqlLiteral("TIMESTAMP_MS", ts.String()) }

// MarshalJSON implements the json.Marshaler interface.
func (ts TimestampMilliseconds) MarshalJSON() ([]byte, error) {
	return quoteJSON(ts.String()), nil
}

// TimestampNanoseconds represents the DuckDB TIMESTAMP_NS type: nanoseconds
// since the Unix epoch. DuckDB displays it at microsecond precision.
type TimestampNanoseconds int64

// String returns the DuckDB representation of ts.
func (ts TimestampNanoseconds) String() string {
	return TimestampStringFromNanoseconds(int64(ts))
}

// SQL returns ts as a TIMESTAMP_NS literal.
func (ts TimestampNanoseconds) SQL() string { return sqlLiteral("TIMESTAMP_NS", ts.String()) }

// MarshalJSON implements the json.Marshaler interface.
func (ts TimestampNanoseconds) MarshalJSON() ([]byte, error) {
	return quoteJSON(ts.String()), nil
}

// TimestampStringFromDaysAndMicros formats a day count and microseconds into
// that day as "<date> <time><tz>".
func TimestampStringFromDaysAndMicros(days int32, microsInDay int64, tz string) string {
	b := make([]byte, 0, len("0000-00-00 (BC) 00:00:00.000000+00:00:00"))
	b = append(b, DateString(days)...)
	b = append(b, ' ')
	if microsInDay < 0 {
		microsInDay += microsPerDay
	}
	b = appendTime(b, microsInDay)
	b = append(b, tz...)
	return string(b)
}

// TimestampString formats microseconds since the Unix epoch as a DuckDB
// timestamp without time zone.
func TimestampString(micros int64) string {
	if str, ok := infinityString(micros); ok {
		return str
	}
	days, rest := floorDivMod(micros, microsPerDay)
	return TimestampStringFromDaysAndMicros(int32(days), rest, "")
}

// TimestampStringWithOffset formats microseconds since the Unix epoch as
// local time at offsetMinutes east of UTC, followed by the offset. The
// infinity values ignore the offset.
func TimestampStringWithOffset(micros int64, offsetMinutes int32) string {
	if str, ok := infinityString(micros); ok {
		return str
	}
	// Split first: micros plus the offset can overflow near the int64 limits.
	days, rest := floorDivMod(micros, microsPerDay)
	shift, rest := floorDivMod(rest+int64(offsetMinutes)*microsPerMinute, microsPerDay)
	return TimestampStringFromDaysAndMicros(int32(days+shift), rest, OffsetString(offsetMinutes))
}

// TimestampStringFromSeconds formats seconds since the Unix epoch as a
// DuckDB timestamp.
func TimestampStringFromSeconds(seconds int64) string {
	return TimestampString(seconds * microsPerSecond)
}

// TimestampStringFromMilliseconds formats milliseconds since the Unix epoch
// as a DuckDB timestamp.
func TimestampStringFromMilliseconds(millis int64) string {
	return TimestampString(millis * microsPerMilli)
}

// TimestampStringFromNanoseconds formats nanoseconds since the Unix epoch as
// a DuckDB timestamp. Sub-microsecond precision is truncated toward zero, as
// DuckDB does, before the value is split into days.
func TimestampStringFromNanoseconds(nanos int64) string {
	return TimestampString(nanos / nanosPerMicro)
}

// infinityString returns the string for micros and true if micros is one of
// the infinity timestamps.
func infinityString(micros int64) (string, bool) {
	switch micros {
	case timestampInfinity:
		return infinity, true
	case timestampNegativeInfinity:
		return negativeInfinity, true
	}
	return "", false
}
