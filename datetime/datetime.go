// Package datetime defines the engine's timestamp value type and combines
// parsed timestamps with timezone information into absolute instants.
package datetime

import (
	"github.com/ngrash/go-sqltime/internal/intmath"
	"github.com/ngrash/go-sqltime/tz"
)

const (
	// SecondsPerDay is the length of a civil day. Leap seconds are ignored.
	SecondsPerDay = 86400

	microsPerSecond = 1_000_000
	nanosPerMicro   = 1000
	nanosPerMilli   = 1_000_000
	nanosPerSecond  = 1_000_000_000
)

// Timestamp is an instant represented as signed seconds since the epoch plus
// a nanosecond remainder in [0, 1e9). It carries no timezone.
type Timestamp struct {
	Seconds int64
	Nanos   uint32
}

// Equal reports whether two timestamps denote the same instant.
func (t Timestamp) Equal(o Timestamp) bool { return t == o }

// Micros returns the sub-second component truncated to microseconds.
func (t Timestamp) Micros() int64 { return int64(t.Nanos) / nanosPerMicro }

// addNanos shifts t by a signed nanosecond delta, renormalizing the
// remainder into [0, 1e9).
func (t Timestamp) addNanos(delta int64) Timestamp {
	ns := int64(t.Nanos) + delta
	return Timestamp{
		Seconds: t.Seconds + intmath.FloorDiv(ns, nanosPerSecond),
		Nanos:   uint32(intmath.FloorMod(ns, nanosPerSecond)),
	}
}

// ParsedTimestamp is the result of parsing a timestamp literal that may have
// carried timezone information.
//
// Zone is a non-owning handle into the timezone registry; it is nil if the
// literal carried no timezone suffix or the suffix did not resolve to a
// registered zone. If the suffix was a syntactically valid offset that did
// not resolve, OffsetMillis records the raw UTC offset and HasOffset is set.
// If no timezone-like suffix was present at all, Zone is nil and HasOffset
// is false.
type ParsedTimestamp struct {
	Timestamp    Timestamp
	Zone         *tz.TimeZone
	OffsetMillis int64
	HasOffset    bool
}

// FromDatetime composes a timestamp from a day count and the number of
// microseconds since midnight. It performs no validation.
func FromDatetime(days, microsSinceMidnight int64) Timestamp {
	return Timestamp{
		Seconds: days*SecondsPerDay + intmath.FloorDiv(microsSinceMidnight, microsPerSecond),
		Nanos:   uint32(intmath.FloorMod(microsSinceMidnight, microsPerSecond) * nanosPerMicro),
	}
}

// FromParsedTimestamp resolves a parsed timestamp into an absolute instant.
// A zone or offset carried by the literal takes precedence; otherwise the
// naive timestamp is interpreted in sessionZone if one is given, and as UTC
// if not.
func FromParsedTimestamp(p ParsedTimestamp, sessionZone *tz.TimeZone) Timestamp {
	switch {
	case p.Zone != nil:
		return Timestamp{Seconds: p.Zone.LocalToUTC(p.Timestamp.Seconds), Nanos: p.Timestamp.Nanos}
	case p.HasOffset:
		return p.Timestamp.addNanos(-p.OffsetMillis * nanosPerMilli)
	case sessionZone != nil:
		return Timestamp{Seconds: sessionZone.LocalToUTC(p.Timestamp.Seconds), Nanos: p.Timestamp.Nanos}
	default:
		return p.Timestamp
	}
}

// ToDate returns the civil day count of the instant in the given zone, or in
// UTC if zone is nil.
func ToDate(t Timestamp, zone *tz.TimeZone) int32 {
	sec := t.Seconds
	if zone != nil {
		sec = zone.UTCToLocal(sec)
	}
	return int32(intmath.FloorDiv(sec, SecondsPerDay))
}
