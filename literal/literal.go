// Package literal parses SQL date and timestamp literals. Each SQL dialect
// compatibility mode has its own grammar; the grammars differ in accepted
// separators, whitespace tolerance, required field completeness and trailing
// data policy, and are all served by one scanner parametrized with a
// per-mode descriptor.
package literal

import (
	"fmt"
)

// DateMode selects the grammar used for date literals.
type DateMode int

const (
	// DateStrict accepts a complete year-month-day date with no surrounding
	// whitespace and no trailing data. Like DateNonStrict it accepts '-',
	// '/', ' ' and '\' as field separators, as long as both separators in a
	// literal are the same.
	DateStrict DateMode = iota

	// DateNonStrict is DateStrict with trailing data ignored, so a date
	// followed by a time-of-day still converts. It backs the date portion of
	// timestamp conversion.
	DateNonStrict

	// DatePrestoCast accepts a complete ISO 8601 date, [+-]Y*-[M]M-[D]D,
	// with optional leading and trailing spaces. Presto casting conventions.
	DatePrestoCast

	// DateSparkCast accepts partial ISO 8601 dates (year, year-month or
	// year-month-day) with optional surrounding spaces. A trailing 'T' ends
	// the literal and everything after it is ignored. Spark SQL casting
	// conventions.
	DateSparkCast

	// DateIso8601 accepts partial ISO 8601 dates with no surrounding
	// whitespace and no trailing data.
	DateIso8601
)

func (m DateMode) String() string {
	switch m {
	case DateStrict:
		return "strict"
	case DateNonStrict:
		return "non-strict"
	case DatePrestoCast:
		return "presto-cast"
	case DateSparkCast:
		return "spark-cast"
	case DateIso8601:
		return "iso8601"
	default:
		return fmt.Sprintf("DateMode(%d)", int(m))
	}
}

// TimestampMode selects the grammar used for timestamp literals.
type TimestampMode int

const (
	// TimestampIso8601 separates date and time with 'T' and allows no
	// surrounding whitespace.
	TimestampIso8601 TimestampMode = iota

	// TimestampPrestoCast separates date and time with a single space and
	// allows surrounding spaces.
	TimestampPrestoCast

	// TimestampLegacyCast is TimestampPrestoCast with 'T' also accepted as
	// the separator.
	TimestampLegacyCast

	// TimestampSparkCast accepts 'T' or space as the separator and allows
	// surrounding spaces.
	TimestampSparkCast
)

func (m TimestampMode) String() string {
	switch m {
	case TimestampIso8601:
		return "iso8601"
	case TimestampPrestoCast:
		return "presto-cast"
	case TimestampLegacyCast:
		return "legacy-cast"
	case TimestampSparkCast:
		return "spark-cast"
	default:
		return fmt.Sprintf("TimestampMode(%d)", int(m))
	}
}

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// MalformedSyntax reports input that does not match the structure of the
	// selected grammar: wrong separators, non-digits where digits are
	// required, an unterminated fraction.
	MalformedSyntax ErrorKind = iota

	// OutOfRange reports syntactically well-formed input with semantically
	// invalid values, such as month 13, day 32 or a year outside the
	// supported range.
	OutOfRange

	// TrailingData reports extra characters after a complete literal in a
	// grammar that forbids them.
	TrailingData

	// AmbiguousTimeZone classifies offset suffixes that matched no
	// registered zone. Parsing still succeeds with a fixed-offset result;
	// callers that want to surface a warning can use this kind.
	AmbiguousTimeZone
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedSyntax:
		return "malformed syntax"
	case OutOfRange:
		return "out of range"
	case TrailingData:
		return "trailing data not allowed"
	case AmbiguousTimeZone:
		return "ambiguous timezone"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError describes why a literal could not be parsed. It carries the
// complete input for diagnostics.
type ParseError struct {
	Kind  ErrorKind
	Input string
	Msg   string
}

// Error returns a string representation of the parse error, implementing the
// error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Kind, e.Input, e.Msg)
}

func malformedError(input, format string, args ...any) *ParseError {
	return &ParseError{Kind: MalformedSyntax, Input: input, Msg: fmt.Sprintf(format, args...)}
}

func rangeError(input, format string, args ...any) *ParseError {
	return &ParseError{Kind: OutOfRange, Input: input, Msg: fmt.Sprintf(format, args...)}
}

func trailingError(input, rest string) *ParseError {
	return &ParseError{Kind: TrailingData, Input: input, Msg: fmt.Sprintf("unexpected %q after literal", rest)}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// scanField reads one or two digits starting at *pos.
func scanField(s string, pos *int) (int32, bool) {
	if *pos >= len(s) || !isDigit(s[*pos]) {
		return 0, false
	}
	v := int32(s[*pos] - '0')
	*pos++
	if *pos < len(s) && isDigit(s[*pos]) {
		v = v*10 + int32(s[*pos]-'0')
		*pos++
	}
	return v, true
}
