package types

import (
	"context"
	"fmt"
)

// TimestampTZ represents the DuckDB TIMESTAMPTZ type: microseconds since the
// Unix epoch, displayed in a time zone.
type TimestampTZ int64

const (
	// TimestampTZInfinity is the DuckDB timestamptz representing infinity.
	TimestampTZInfinity TimestampTZ = timestampInfinity
	// TimestampTZNegativeInfinity is the DuckDB timestamptz representing
	// -infinity.
	TimestampTZNegativeInfinity TimestampTZ = timestampNegativeInfinity
)

// String returns the DuckDB representation of ts in UTC, e.g.
// "2021-02-03 04:05:06.0078+00".
func (ts TimestampTZ) String() string {
	return TimestampStringWithOffset(int64(ts), 0)
}

// SQL returns ts in UTC as a TIMESTAMPTZ literal.
func (ts TimestampTZ) SQL() string { return sqlLiteral("TIMESTAMPTZ", ts.String()) }

// MarshalJSON implements the json.Marshaler interface. The timestamp is a
// quoted string in UTC.
func (ts TimestampTZ) MarshalJSON() ([]byte, error) { return quoteJSON(ts.String()), nil }

// FormatIn returns the DuckDB representation of ts in the time zone named
// zone, using r to determine the offset at ts. The infinity values are
// returned without consulting r. Offsets are displayed to the minute;
// sub-minute offsets, which occur in historical local mean times, are
// truncated toward zero.
func (ts TimestampTZ) FormatIn(r OffsetResolver, zone string) (string, error) {
	micros := int64(ts)
	if str, ok := infinityString(micros); ok {
		return str, nil
	}

	seconds, err := r.OffsetSeconds(micros, zone)
	if err != nil {
		return "", fmt.Errorf("%w: cannot format timestamptz in %q: %w", ErrValue, zone, err)
	}
	return TimestampStringWithOffset(micros, seconds/secondsPerMin), nil
}

// SQLIn returns ts in the time zone named zone as a TIMESTAMPTZ literal.
func (ts TimestampTZ) SQLIn(r OffsetResolver, zone string) (string, error) {
	str, err := ts.FormatIn(r, zone)
	if err != nil {
		return "", err
	}
	return sqlLiteral("TIMESTAMPTZ", str), nil
}

// ToString returns the DuckDB representation of ts in the time zone in ctx,
// resolved by DefaultResolver. Without a time zone in ctx it returns the
// UTC representation.
func (ts TimestampTZ) ToString(ctx context.Context) (string, error) {
	zone := TZFromContext(ctx)
	if zone == "" {
		return ts.String(), nil
	}
	return ts.FormatIn(DefaultResolver, zone)
}
