// Command datecast parses SQL date and timestamp literals under a chosen
// dialect grammar and prints the resulting day count or instant.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngrash/go-sqltime/calendar"
	"github.com/ngrash/go-sqltime/datetime"
	"github.com/ngrash/go-sqltime/literal"
	"github.com/ngrash/go-sqltime/tz"
)

var (
	timestampFlag = flag.Bool("timestamp", false, "parse literals as timestamps instead of dates")
	modeFlag      = flag.String("mode", "iso8601", "grammar mode (dates: strict, non-strict, presto-cast, spark-cast, iso8601; timestamps: iso8601, presto-cast, legacy-cast, spark-cast)")
	zoneFlag      = flag.String("session-zone", "", "session timezone for naive timestamp literals")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Usage: datecast [flags] <literal>...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var sessionZone *tz.TimeZone
	if *zoneFlag != "" {
		z, ok := tz.Lookup(*zoneFlag)
		if !ok {
			fmt.Println("unknown session timezone:", *zoneFlag)
			os.Exit(1)
		}
		sessionZone = z
	}

	for _, arg := range args {
		if *timestampFlag {
			printTimestamp(arg, sessionZone)
		} else {
			printDate(arg)
		}
	}
}

func dateMode(name string) (literal.DateMode, bool) {
	for _, m := range []literal.DateMode{
		literal.DateStrict, literal.DateNonStrict, literal.DatePrestoCast,
		literal.DateSparkCast, literal.DateIso8601,
	} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

func timestampMode(name string) (literal.TimestampMode, bool) {
	for _, m := range []literal.TimestampMode{
		literal.TimestampIso8601, literal.TimestampPrestoCast,
		literal.TimestampLegacyCast, literal.TimestampSparkCast,
	} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

func printDate(s string) {
	mode, ok := dateMode(*modeFlag)
	if !ok {
		fmt.Println("unknown date mode:", *modeFlag)
		os.Exit(1)
	}
	days, err := literal.ParseDate(s, mode)
	if err != nil {
		fmt.Printf("%q: %v\n", s, err)
		os.Exit(1)
	}
	y, m, d := calendar.DateFromDays(int64(days))
	fmt.Printf("%q: day %d (%d-%02d-%02d)\n", s, days, y, m, d)
}

func printTimestamp(s string, sessionZone *tz.TimeZone) {
	mode, ok := timestampMode(*modeFlag)
	if !ok {
		fmt.Println("unknown timestamp mode:", *modeFlag)
		os.Exit(1)
	}
	parsed, err := literal.ParseTimestampWithTimeZone(s, mode, tz.DefaultRegistry)
	if err != nil {
		fmt.Printf("%q: %v\n", s, err)
		os.Exit(1)
	}
	ts := datetime.FromParsedTimestamp(parsed, sessionZone)
	fmt.Printf("%q: seconds %d nanos %d", s, ts.Seconds, ts.Nanos)
	switch {
	case parsed.Zone != nil:
		fmt.Printf(" zone %s", parsed.Zone.Name())
	case parsed.HasOffset:
		fmt.Printf(" offset %dms", parsed.OffsetMillis)
	}
	fmt.Println()
}
