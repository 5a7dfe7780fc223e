package types

const (
	// timeTZOffsetBits is the number of low bits of an encoded TIMETZ that
	// hold the offset. The remaining high bits hold the microseconds.
	timeTZOffsetBits = 24
	timeTZOffsetMask = 1<<timeTZOffsetBits - 1

	// timeTZMaxOffset is the largest offset, in seconds, a TIMETZ can carry:
	// one second short of 16 hours. DuckDB stores offsets inverted from it
	// so that encoded values sort by UTC time.
	timeTZMaxOffset = 16*secondsPerHour - 1
)

// TimeTZ represents the DuckDB TIMETZ type: a time of day and the UTC offset
// it was recorded in.
type TimeTZ struct {
	// Micros is the number of microseconds since midnight.
	Micros int64
	// Offset is the UTC offset in seconds east of UTC.
	Offset int32
}

// NewTimeTZFromBits decodes the 64-bit DuckDB encoding of a TIMETZ.
func NewTimeTZFromBits(bits uint64) TimeTZ {
	return TimeTZ{
		Micros: int64(bits >> timeTZOffsetBits),
		Offset: int32(timeTZMaxOffset - int64(bits&timeTZOffsetMask)),
	}
}

// Bits returns the 64-bit DuckDB encoding of t.
func (t TimeTZ) Bits() uint64 {
	return uint64(t.Micros)<<timeTZOffsetBits | uint64(timeTZMaxOffset-int64(t.Offset))
}

// String returns the DuckDB representation of t, e.g. "12:34:56-05:30".
func (t TimeTZ) String() string {
	micros := t.Micros
	if micros < 0 {
		micros += microsPerDay
	}
	b := make([]byte, 0, len("00:00:00.000000+00:00:00"))
	b = appendTime(b, micros)
	b = appendOffset(b, int64(t.Offset))
	return string(b)
}

// SQL returns t as a TIMETZ literal.
func (t TimeTZ) SQL() string { return sqlLiteral("TIMETZ", t.String()) }

// MarshalJSON implements the json.Marshaler interface.
func (t TimeTZ) MarshalJSON() ([]byte, error) { return quoteJSON(t.String()), nil }
