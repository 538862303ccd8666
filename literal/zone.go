package literal

import (
	"strings"

	"github.com/ngrash/go-sqltime/datetime"
	"github.com/ngrash/go-sqltime/tz"
)

// ZoneLookup resolves timezone names to handles. It models the read-only
// timezone registry collaborator; implementations must be safe for
// concurrent lookups. *tz.Registry implements it.
type ZoneLookup interface {
	Lookup(name string) (*tz.TimeZone, bool)
}

// ParseTimestampWithTimeZone parses a timestamp literal that may end in a
// timezone suffix: 'Z', a numeric offset ±HH[:mm[:ss[(.|,)SSS]]], or a zone
// name resolved through zones. At most one space may separate the time
// element from the suffix.
//
// A numeric offset is recorded as a raw offset in milliseconds unless the
// registry resolves the offset spelling itself to a zone. A name the
// registry does not recognize leaves both the zone handle and the offset
// absent. If no suffix is present at all, the result is a naive timestamp.
// A nil zones lookup resolves nothing.
func ParseTimestampWithTimeZone(s string, mode TimestampMode, zones ZoneLookup) (datetime.ParsedTimestamp, error) {
	g := timestampGrammarFor(mode)
	ts, pos, perr := scanTimestamp(s, g)
	if perr != nil {
		return datetime.ParsedTimestamp{}, perr
	}
	if pos < len(s) && s[pos] == ' ' {
		pos++
	}
	suffix := s[pos:]
	if g.outerSpaces {
		suffix = strings.TrimRight(suffix, " \t\n\r")
	}
	if suffix == "" {
		return datetime.ParsedTimestamp{Timestamp: ts}, nil
	}
	return resolveZoneSuffix(s, ts, suffix, zones)
}

func resolveZoneSuffix(input string, ts datetime.Timestamp, suffix string, zones ZoneLookup) (datetime.ParsedTimestamp, error) {
	p := datetime.ParsedTimestamp{Timestamp: ts}

	if suffix == "Z" || suffix == "z" {
		if z, ok := lookup(zones, "UTC"); ok {
			p.Zone = z
		} else {
			p.HasOffset = true // offset zero
		}
		return p, nil
	}

	if suffix[0] == '+' || suffix[0] == '-' {
		millis, perr := scanZoneOffset(input, suffix)
		if perr != nil {
			return datetime.ParsedTimestamp{}, perr
		}
		// Registries may carry offset-style zone ids; prefer those.
		if z, ok := lookup(zones, suffix); ok {
			p.Zone = z
			return p, nil
		}
		p.OffsetMillis = millis
		p.HasOffset = true
		return p, nil
	}

	if !validZoneName(suffix) {
		return datetime.ParsedTimestamp{}, malformedError(input, "invalid timezone %q", suffix)
	}
	if z, ok := lookup(zones, suffix); ok {
		p.Zone = z
	}
	// An unrecognized name leaves the zone handle absent; the caller
	// decides whether a naive result is acceptable.
	return p, nil
}

func lookup(zones ZoneLookup, name string) (*tz.TimeZone, bool) {
	if zones == nil {
		return nil, false
	}
	return zones.Lookup(name)
}

// scanZoneOffset parses ±HH[:mm[:ss[(.|,)SSS]]] into a signed offset in
// milliseconds.
func scanZoneOffset(input, tok string) (int64, *ParseError) {
	sign := int64(1)
	if tok[0] == '-' {
		sign = -1
	}
	pos := 1

	var hh, mm, ss int32
	var ok bool
	if hh, ok = scanField(tok, &pos); !ok {
		return 0, malformedError(input, "expected timezone offset hours")
	}
	if pos < len(tok) && tok[pos] == ':' {
		pos++
		if mm, ok = scanField(tok, &pos); !ok {
			return 0, malformedError(input, "expected timezone offset minutes")
		}
		if pos < len(tok) && tok[pos] == ':' {
			pos++
			if ss, ok = scanField(tok, &pos); !ok {
				return 0, malformedError(input, "expected timezone offset seconds")
			}
		}
	}
	var millis int64
	if pos < len(tok) && (tok[pos] == '.' || tok[pos] == ',') {
		pos++
		if pos >= len(tok) || !isDigit(tok[pos]) {
			return 0, malformedError(input, "unterminated timezone offset fraction")
		}
		scale := int64(100)
		for pos < len(tok) && isDigit(tok[pos]) && scale > 0 {
			millis += int64(tok[pos]-'0') * scale
			scale /= 10
			pos++
		}
	}
	if pos != len(tok) {
		return 0, malformedError(input, "invalid timezone offset %q", tok)
	}
	if hh > 23 || mm > 59 || ss > 59 {
		return 0, rangeError(input, "timezone offset %q out of range", tok)
	}
	return sign * ((int64(hh)*3600+int64(mm)*60+int64(ss))*1000 + millis), nil
}

// validZoneName reports whether s is plausible as a zone identifier such as
// "UTC", "America/Los_Angeles" or "Etc/GMT+8".
func validZoneName(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && !strings.ContainsRune("/_+-.", rune(c)) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
