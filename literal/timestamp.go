package literal

import (
	"github.com/ngrash/go-sqltime/datetime"
)

// timestampGrammar is the configuration descriptor for timestamp literals.
// The date element is always dash-separated with missing month and day
// defaulting to 1; the modes differ in the date/time separator and in
// whitespace tolerance.
type timestampGrammar struct {
	sepT        bool
	sepSpace    bool
	outerSpaces bool
	// timeOnly accepts a bare 'T' time element with no date, resolved on
	// the epoch day.
	timeOnly bool
}

func timestampGrammarFor(mode TimestampMode) timestampGrammar {
	switch mode {
	case TimestampIso8601:
		return timestampGrammar{sepT: true, timeOnly: true}
	case TimestampPrestoCast:
		return timestampGrammar{sepSpace: true, outerSpaces: true}
	case TimestampLegacyCast:
		return timestampGrammar{sepT: true, sepSpace: true, outerSpaces: true}
	default: // TimestampSparkCast
		return timestampGrammar{sepT: true, sepSpace: true, outerSpaces: true}
	}
}

// scanTime parses HH[:mm[:ss[(.|,)fraction]]] starting at *pos. Fraction
// digits beyond nanosecond precision are truncated, not rounded.
func scanTime(s string, pos *int) (hour, minute, second int32, nanos int64, perr *ParseError) {
	var ok bool
	if hour, ok = scanField(s, pos); !ok {
		return 0, 0, 0, 0, malformedError(s, "expected hour digits")
	}
	if *pos < len(s) && s[*pos] == ':' {
		*pos++
		if minute, ok = scanField(s, pos); !ok {
			return 0, 0, 0, 0, malformedError(s, "expected minute digits")
		}
		if *pos < len(s) && s[*pos] == ':' {
			*pos++
			if second, ok = scanField(s, pos); !ok {
				return 0, 0, 0, 0, malformedError(s, "expected second digits")
			}
			if *pos < len(s) && (s[*pos] == '.' || s[*pos] == ',') {
				*pos++
				if *pos >= len(s) || !isDigit(s[*pos]) {
					return 0, 0, 0, 0, malformedError(s, "unterminated fraction")
				}
				scale := int64(100_000_000)
				for *pos < len(s) && isDigit(s[*pos]) {
					if scale > 0 {
						nanos += int64(s[*pos]-'0') * scale
						scale /= 10
					}
					*pos++
				}
			}
		}
	}
	switch {
	case hour > 23:
		return 0, 0, 0, 0, rangeError(s, "hour %d outside [0, 23]", hour)
	case minute > 59:
		return 0, 0, 0, 0, rangeError(s, "minute %d outside [0, 59]", minute)
	case second > 59:
		// No leap seconds.
		return 0, 0, 0, 0, rangeError(s, "second %d outside [0, 59]", second)
	}
	return hour, minute, second, nanos, nil
}

func composeTimestamp(days int64, hour, minute, second int32, nanos int64) datetime.Timestamp {
	seconds := days*datetime.SecondsPerDay + int64(hour)*3600 + int64(minute)*60 + int64(second)
	return datetime.Timestamp{Seconds: seconds, Nanos: uint32(nanos)}
}

// scanTimestamp parses a date element optionally followed by a time element
// and returns the naive timestamp together with the position of the first
// unconsumed byte. A missing time element means midnight. The date/time
// separator is a single byte; a second space there is trailing data.
func scanTimestamp(s string, g timestampGrammar) (datetime.Timestamp, int, *ParseError) {
	pos := 0
	if g.outerSpaces {
		pos = skipSpaces(s, pos)
	}
	if g.timeOnly && pos < len(s) && s[pos] == 'T' {
		pos++
		hour, minute, second, nanos, perr := scanTime(s, &pos)
		if perr != nil {
			return datetime.Timestamp{}, pos, perr
		}
		return composeTimestamp(0, hour, minute, second, nanos), pos, nil
	}

	dg := dateGrammar{separators: "-", outerSpaces: g.outerSpaces, partial: true, ignoreTrailing: true}
	days, pos, perr := scanDate(s, dg)
	if perr != nil {
		return datetime.Timestamp{}, pos, perr
	}

	var hour, minute, second int32
	var nanos int64
	if pos < len(s) {
		switch {
		case s[pos] == 'T' && g.sepT:
			pos++
		case s[pos] == ' ' && g.sepSpace:
			pos++
		default:
			return composeTimestamp(days, 0, 0, 0, 0), pos, nil
		}
		// The time element itself is optional after the separator.
		if pos < len(s) && isDigit(s[pos]) {
			hour, minute, second, nanos, perr = scanTime(s, &pos)
			if perr != nil {
				return datetime.Timestamp{}, pos, perr
			}
		}
	}
	return composeTimestamp(days, hour, minute, second, nanos), pos, nil
}

// ParseTimestamp converts a timestamp literal to a naive timestamp under the
// grammar selected by mode. Timezone and offset suffixes are rejected at
// this layer: the returned timestamp carries no timezone, so honoring a
// suffix here would silently misinterpret it. Use
// ParseTimestampWithTimeZone for literals that may carry one.
func ParseTimestamp(s string, mode TimestampMode) (datetime.Timestamp, error) {
	g := timestampGrammarFor(mode)
	ts, pos, perr := scanTimestamp(s, g)
	if perr != nil {
		return datetime.Timestamp{}, perr
	}
	if g.outerSpaces {
		pos = skipSpaces(s, pos)
	}
	if pos < len(s) {
		return datetime.Timestamp{}, trailingError(s, s[pos:])
	}
	return ts, nil
}
