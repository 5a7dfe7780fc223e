package types

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// OffsetString formats a UTC offset in minutes as "±HH" or "±HH:MM". The
// minutes are omitted when zero.
func OffsetString(minutes int32) string {
	return string(appendOffset(nil, int64(minutes)*secondsPerMin))
}

// OffsetStringFromSeconds formats a UTC offset in seconds as "±HH",
// "±HH:MM", or "±HH:MM:SS". Seconds appear only when non-zero, and minutes
// appear when either they or the seconds are non-zero.
func OffsetStringFromSeconds(seconds int32) string {
	return string(appendOffset(nil, int64(seconds)))
}

// appendOffset appends the offset format of seconds to b.
func appendOffset(b []byte, seconds int64) []byte {
	if seconds < 0 {
		b = append(b, '-')
	} else {
		b = append(b, '+')
	}
	seconds = abs(seconds)
	secs := seconds % secondsPerMin
	mins := seconds / secondsPerMin % minsPerHour
	hours := seconds / secondsPerHour

	b = appendPadded(b, hours, 2)
	if mins != 0 || secs != 0 {
		b = append(b, ':')
		b = appendPadded(b, mins, 2)
		if secs != 0 {
			b = append(b, ':')
			b = appendPadded(b, secs, 2)
		}
	}
	return b
}

// OffsetResolver resolves the UTC offset in effect in a named time zone at an
// instant.
type OffsetResolver interface {
	// OffsetSeconds returns the offset east of UTC, in seconds, of the time
	// zone named zone at micros microseconds since the Unix epoch.
	OffsetSeconds(micros int64, zone string) (int32, error)
}

// OffsetResolverFunc adapts a function to the OffsetResolver interface.
type OffsetResolverFunc func(micros int64, zone string) (int32, error)

// OffsetSeconds calls f(micros, zone).
func (f OffsetResolverFunc) OffsetSeconds(micros int64, zone string) (int32, error) {
	return f(micros, zone)
}

// FixedOffsets is an OffsetResolver that maps zone names to constant offsets
// in seconds, regardless of instant.
type FixedOffsets map[string]int32

// OffsetSeconds returns the offset for zone, or an error if zone is not in
// the map.
func (f FixedOffsets) OffsetSeconds(_ int64, zone string) (int32, error) {
	off, ok := f[zone]
	if !ok {
		return 0, fmt.Errorf("%w: unknown time zone %q", ErrValue, zone)
	}
	return off, nil
}

// LocationResolver is an OffsetResolver backed by the IANA time zone database
// as loaded by [time.LoadLocation]. Loaded locations are cached. The zero
// value is ready to use and safe for concurrent use.
type LocationResolver struct {
	locations sync.Map // map[string]*time.Location
}

// DefaultResolver is the OffsetResolver used when none is specified.
//
//nolint:gochecknoglobals
var DefaultResolver OffsetResolver = &LocationResolver{}

// Location returns the time.Location named zone.
func (r *LocationResolver) Location(zone string) (*time.Location, error) {
	if loc, ok := r.locations.Load(zone); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q", ErrValue, zone)
	}
	actual, _ := r.locations.LoadOrStore(zone, loc)
	return actual.(*time.Location), nil
}

// OffsetSeconds returns the offset of zone at micros.
func (r *LocationResolver) OffsetSeconds(micros int64, zone string) (int32, error) {
	loc, err := r.Location(zone)
	if err != nil {
		return 0, err
	}
	_, off := time.UnixMicro(micros).In(loc).Zone()
	return int32(off), nil //nolint:gosec // offsets are well under a day
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// tzKey is the key for time zone names in Contexts. It is unexported;
// clients use ContextWithTZ and TZFromContext instead of using this key
// directly.
//
//nolint:gochecknoglobals
var tzKey key

// ContextWithTZ returns a new Context that carries the time zone name zone.
func ContextWithTZ(ctx context.Context, zone string) context.Context {
	if zone == "" {
		return ctx
	}
	return context.WithValue(ctx, tzKey, zone)
}

// TZFromContext returns the time zone name stored in ctx, or the empty string
// for UTC.
func TZFromContext(ctx context.Context) string {
	zone, _ := ctx.Value(tzKey).(string)
	return zone
}
