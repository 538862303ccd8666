package literal

import (
	"math"
	"strings"

	"github.com/ngrash/go-sqltime/calendar"
)

// dateGrammar is the configuration descriptor consumed by scanDate. The
// date modes share one scanner; each mode only differs in the descriptor.
type dateGrammar struct {
	// separators lists the accepted field separators. The separator between
	// month and day must repeat the one between year and month.
	separators string
	// outerSpaces tolerates leading and trailing whitespace.
	outerSpaces bool
	// partial accepts year and year-month literals; missing fields
	// default to 1.
	partial bool
	// trailingT ends the literal at a 'T'; everything after it is ignored.
	trailingT bool
	// ignoreTrailing leaves trailing data unconsumed instead of rejecting it.
	ignoreTrailing bool
}

func dateGrammarFor(mode DateMode) dateGrammar {
	switch mode {
	case DateStrict:
		return dateGrammar{separators: `-/ \`}
	case DateNonStrict:
		return dateGrammar{separators: `-/ \`, ignoreTrailing: true}
	case DatePrestoCast:
		return dateGrammar{separators: "-", outerSpaces: true}
	case DateSparkCast:
		return dateGrammar{separators: "-", outerSpaces: true, partial: true, trailingT: true}
	default: // DateIso8601
		return dateGrammar{separators: "-", partial: true}
	}
}

// scanDate parses a date element at the start of s and returns its day count
// together with the position of the first unconsumed byte. Trailing data
// policy is the caller's concern.
func scanDate(s string, g dateGrammar) (int64, int, *ParseError) {
	pos := 0
	if g.outerSpaces {
		pos = skipSpaces(s, pos)
	}
	if pos >= len(s) {
		return 0, pos, malformedError(s, "expected a date")
	}

	negative := false
	if s[pos] == '-' || s[pos] == '+' {
		negative = s[pos] == '-'
		pos++
	}
	if pos >= len(s) || !isDigit(s[pos]) {
		return 0, pos, malformedError(s, "expected year digits")
	}

	// Accumulate the year, watching the magnitude so that absurdly long
	// digit runs fail before they can wrap around.
	var year int64
	for pos < len(s) && isDigit(s[pos]) {
		year = year*10 + int64(s[pos]-'0')
		if year > int64(calendar.MaxYear) {
			return 0, pos, rangeError(s, "year exceeds %d", calendar.MaxYear)
		}
		pos++
	}
	if negative {
		year = -year
		if year < int64(calendar.MinYear) {
			return 0, pos, rangeError(s, "year precedes %d", calendar.MinYear)
		}
	}

	month, day := int32(1), int32(1)
	fields := 1
	if pos < len(s) && strings.IndexByte(g.separators, s[pos]) >= 0 {
		sep := s[pos]
		pos++
		var ok bool
		if month, ok = scanField(s, &pos); !ok {
			return 0, pos, malformedError(s, "expected month digits")
		}
		fields = 2
		if pos < len(s) && s[pos] == sep {
			pos++
			if day, ok = scanField(s, &pos); !ok {
				return 0, pos, malformedError(s, "expected day digits")
			}
			fields = 3
		}
	}
	if fields < 3 && !g.partial {
		return 0, pos, malformedError(s, "expected a complete year-month-day date")
	}

	days, err := calendar.DaysFromDate(int32(year), month, day)
	if err != nil {
		return 0, pos, rangeError(s, "%v", err)
	}
	return days, pos, nil
}

// ParseDate converts a date literal to a day count since the epoch under the
// grammar selected by mode. Errors are *ParseError values classifying the
// failure as malformed syntax, out of range or trailing data.
func ParseDate(s string, mode DateMode) (int32, error) {
	g := dateGrammarFor(mode)
	days, pos, perr := scanDate(s, g)
	if perr != nil {
		return 0, perr
	}
	if g.trailingT && pos < len(s) && s[pos] == 'T' {
		// Spark's cast discards everything after the 'T'.
		pos = len(s)
	}
	if g.outerSpaces {
		pos = skipSpaces(s, pos)
	}
	if !g.ignoreTrailing && pos < len(s) {
		return 0, trailingError(s, s[pos:])
	}
	if days < math.MinInt32 || days > math.MaxInt32 {
		return 0, rangeError(s, "date exceeds the 32-bit day range")
	}
	return int32(days), nil
}
