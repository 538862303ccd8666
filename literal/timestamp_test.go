package literal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-sqltime/datetime"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		input string
		mode  TimestampMode
		want  datetime.Timestamp
	}{
		{"1970-01-01T00:00:00", TimestampIso8601, datetime.Timestamp{Seconds: 0, Nanos: 0}},
		{"2024-01-15T10:30:00.500", TimestampIso8601, datetime.Timestamp{Seconds: 1705314600, Nanos: 500_000_000}},
		{"2024-01-15T10:30:00,500", TimestampIso8601, datetime.Timestamp{Seconds: 1705314600, Nanos: 500_000_000}},
		{"2024-01-15T10", TimestampIso8601, datetime.Timestamp{Seconds: 1705312800}},
		{"2024-01-15T", TimestampIso8601, datetime.Timestamp{Seconds: 1705276800}},
		{"2024-01-15", TimestampIso8601, datetime.Timestamp{Seconds: 1705276800}},
		// Missing month and day default to 1.
		{"2024", TimestampIso8601, datetime.Timestamp{Seconds: 1704067200}},
		{"2024-03", TimestampIso8601, datetime.Timestamp{Seconds: 1709251200}},
		// Fraction digits beyond nanoseconds are truncated, not rounded.
		{"2024-01-15T00:00:00.123456789999", TimestampIso8601, datetime.Timestamp{Seconds: 1705276800, Nanos: 123_456_789}},
		{"1969-12-31T23:59:59", TimestampIso8601, datetime.Timestamp{Seconds: -1}},
		// A time-only literal resolves on the epoch day.
		{"T10:30:00", TimestampIso8601, datetime.Timestamp{Seconds: 37800}},
		{"T10:30:00.5", TimestampIso8601, datetime.Timestamp{Seconds: 37800, Nanos: 500_000_000}},
		{"T10", TimestampIso8601, datetime.Timestamp{Seconds: 36000}},

		{"2024-01-15 10:30:00", TimestampPrestoCast, datetime.Timestamp{Seconds: 1705314600}},
		{" 2024-01-15 10:30:00 ", TimestampPrestoCast, datetime.Timestamp{Seconds: 1705314600}},
		{"2024-01-15 ", TimestampPrestoCast, datetime.Timestamp{Seconds: 1705276800}},

		{"2024-01-15T10:30:00", TimestampLegacyCast, datetime.Timestamp{Seconds: 1705314600}},
		{"2024-01-15 10:30:00", TimestampLegacyCast, datetime.Timestamp{Seconds: 1705314600}},

		{"2024-01-15T10:30:00", TimestampSparkCast, datetime.Timestamp{Seconds: 1705314600}},
		{" 2024-01-15 10:30:00.5 ", TimestampSparkCast, datetime.Timestamp{Seconds: 1705314600, Nanos: 500_000_000}},
	}
	for _, c := range cases {
		got, err := ParseTimestamp(c.input, c.mode)
		if err != nil {
			t.Errorf("ParseTimestamp(%q, %v) error: %v", c.input, c.mode, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseTimestamp(%q, %v) mismatch (-want +got):\n%s", c.input, c.mode, diff)
		}
	}
}

func TestParseTimestampErrors(t *testing.T) {
	cases := []struct {
		input    string
		mode     TimestampMode
		wantKind ErrorKind
	}{
		{"", TimestampIso8601, MalformedSyntax},
		{"abc", TimestampIso8601, MalformedSyntax},
		// Space separator is not part of the ISO 8601 grammar.
		{"2024-01-15 10:30:00", TimestampIso8601, TrailingData},
		{" 2024-01-15T10:30:00", TimestampIso8601, MalformedSyntax},
		{"2024-01-15T10:30:00 ", TimestampIso8601, TrailingData},
		// 'T' separator is not part of the Presto grammar.
		{"2024-01-15T10:30:00", TimestampPrestoCast, TrailingData},
		// The date/time separator is exactly one space.
		{"2024-01-15  10:30:00", TimestampPrestoCast, TrailingData},
		{"2024-01-15 \t10:30:00", TimestampPrestoCast, TrailingData},
		{"2024-01-15\t10:30:00", TimestampPrestoCast, TrailingData},
		{"2024-01-15  10:30:00", TimestampSparkCast, TrailingData},
		// Time-only literals belong to the ISO 8601 grammar alone.
		{"T10:30:00", TimestampPrestoCast, MalformedSyntax},
		{"T10:30:00", TimestampLegacyCast, MalformedSyntax},
		{"T", TimestampIso8601, MalformedSyntax},
		{"2024-01-15T10:", TimestampIso8601, MalformedSyntax},
		{"2024-01-15T10:30:00.", TimestampIso8601, MalformedSyntax},
		{"2024-01-15T10:30:00.abc", TimestampIso8601, MalformedSyntax},

		{"2024-01-15T24:00:00", TimestampIso8601, OutOfRange},
		{"2024-01-15T10:60:00", TimestampIso8601, OutOfRange},
		// No leap seconds.
		{"2024-01-15T10:30:60", TimestampIso8601, OutOfRange},
		{"2024-13-15T10:30:00", TimestampIso8601, OutOfRange},

		// Timezone suffixes are rejected at this layer.
		{"2024-01-15T10:30:00Z", TimestampIso8601, TrailingData},
		{"2024-01-15T10:30:00+05:30", TimestampIso8601, TrailingData},
		{"2024-01-15 10:30:00 UTC", TimestampPrestoCast, TrailingData},
	}
	for _, c := range cases {
		_, err := ParseTimestamp(c.input, c.mode)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseTimestamp(%q, %v) = %v, want *ParseError", c.input, c.mode, err)
			continue
		}
		if perr.Kind != c.wantKind {
			t.Errorf("ParseTimestamp(%q, %v) kind = %v, want %v", c.input, c.mode, perr.Kind, c.wantKind)
		}
	}
}
