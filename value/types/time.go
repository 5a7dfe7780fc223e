package types

// Time represents the DuckDB TIME type: microseconds since midnight.
type Time int64

// String returns the DuckDB representation of t, e.g. "12:34:56.789".
func (t Time) String() string { return TimeString(int64(t)) }

// SQL returns t as a TIME literal.
func (t Time) SQL() string { return sqlLiteral("TIME", t.String()) }

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string in the DuckDB time format.
func (t Time) MarshalJSON() ([]byte, error) { return quoteJSON(t.String()), nil }

// TimeString formats microseconds since midnight as "HH:MM:SS[.ffffff]". A
// negative value counts back from the end of the day.
func TimeString(microsInDay int64) string {
	if microsInDay < 0 {
		microsInDay += microsPerDay
	}
	return string(appendTime(nil, microsInDay))
}

// DurationString formats a signed number of microseconds as
// "[-]HH:MM:SS[.ffffff]". Hours are not limited to a single day.
func DurationString(micros int64) string {
	if micros < 0 {
		// Negate in uint64 space so math.MinInt64 survives.
		return string(appendTimeUnsigned([]byte{'-'}, uint64(-(micros + 1))+1))
	}
	return string(appendTime(nil, micros))
}

// TimeStringFromParts formats hours, minutes, seconds, and microseconds as
// "HH:MM:SS[.ffffff]", trimming trailing zeros from the fraction.
func TimeStringFromParts(hours, minutes, seconds, micros int64) string {
	return string(appendTimeParts(nil, uint64(hours), uint64(minutes), uint64(seconds), uint64(micros)))
}

// appendTime appends the time format of the non-negative micros to b.
func appendTime(b []byte, micros int64) []byte {
	return appendTimeUnsigned(b, uint64(micros))
}

func appendTimeUnsigned(b []byte, micros uint64) []byte {
	frac := micros % microsPerSecond
	secs := micros / microsPerSecond
	mins := secs / secondsPerMin
	return appendTimeParts(b, mins/minsPerHour, mins%minsPerHour, secs%secondsPerMin, frac)
}

func appendTimeParts(b []byte, hours, minutes, seconds, micros uint64) []byte {
	b = appendPadded(b, hours, 2)
	b = append(b, ':')
	b = appendPadded(b, minutes, 2)
	b = append(b, ':')
	b = appendPadded(b, seconds, 2)
	if micros == 0 {
		return b
	}

	b = append(b, '.')
	start := len(b)
	b = appendPadded(b, micros, 6)
	end := len(b)
	for end > start && b[end-1] == '0' {
		end--
	}
	return b[:end]
}
