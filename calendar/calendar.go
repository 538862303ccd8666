// Package calendar converts between civil calendar representations and a
// signed count of days since the Unix epoch (1970-01-01), using the proleptic
// Gregorian calendar. It supports the full year range used by the engine's
// timestamp type and performs no parsing and no I/O.
package calendar

import (
	"errors"
	"fmt"

	"github.com/ngrash/go-sqltime/internal/intmath"
)

// MinYear and MaxYear bound the supported year range. They correspond to the
// Joda datetime minimum and maximum instants.
const (
	MinYear int32 = -292275055
	MaxYear int32 = 292278994
)

// One Gregorian cycle: the calendar repeats every 400 years, or 146097 days.
const (
	yearInterval        = 400
	daysPerYearInterval = 146097
)

// epochOffsetDays is the number of days from 0000-03-01 to 1970-01-01.
// March-based years put the leap day last, which keeps the day-of-year
// formula free of leap-year special cases.
const epochOffsetDays = 719468

// ErrOutOfRange is wrapped by errors returned for dates whose components are
// syntactically fine but not a real calendar date or outside the supported
// year range. Use errors.Is to test for it.
var ErrOutOfRange = errors.New("date out of range")

// IsLeapYear reports whether year is a Gregorian leap year.
// It is defined for negative years.
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxDayOfMonth returns the number of days in the given month of the given
// year. February yields 29 in leap years.
func MaxDayOfMonth(year, month int32) int32 {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// IsValidDate reports whether year, month and day form a valid civil date.
func IsValidDate(year, month, day int32) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= MaxDayOfMonth(year, month)
}

// IsValidDayOfYear reports whether dayOfYear is valid for the given year.
func IsValidDayOfYear(year, dayOfYear int32) bool {
	days := int32(365)
	if IsLeapYear(year) {
		days = 366
	}
	return dayOfYear >= 1 && dayOfYear <= days
}

func validYear(year int32) bool {
	return year >= MinYear && year <= MaxYear
}

// daysFromCivil reduces a civil date to days since epoch by decomposing the
// (March-based) year into whole 146097-day Gregorian cycles plus a
// year-of-cycle and day-of-year remainder. All intermediates stay well within
// int64 for the full [MinYear, MaxYear] span.
func daysFromCivil(year, month, day int64) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := intmath.FloorDiv(y, yearInterval)
	yoe := y - era*yearInterval // [0, 399]
	var mp int64
	if month > 2 {
		mp = month - 3
	} else {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerYearInterval + doe - epochOffsetDays
}

// civilFromDays is the exact inverse of daysFromCivil.
func civilFromDays(days int64) (year int64, month, day int32) {
	z := days + epochOffsetDays
	era := intmath.FloorDiv(z, daysPerYearInterval)
	doe := z - era*daysPerYearInterval // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*yearInterval
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int32(m), int32(d)
}

// DaysFromDate computes the signed number of days since the epoch for the
// given civil date. It returns an error wrapping ErrOutOfRange if the date is
// invalid or the year is outside [MinYear, MaxYear].
func DaysFromDate(year, month, day int32) (int64, error) {
	if !validYear(year) {
		return 0, fmt.Errorf("year %d outside [%d, %d]: %w", year, MinYear, MaxYear, ErrOutOfRange)
	}
	if !IsValidDate(year, month, day) {
		return 0, fmt.Errorf("invalid date %d-%02d-%02d: %w", year, month, day, ErrOutOfRange)
	}
	return daysFromCivil(int64(year), int64(month), int64(day)), nil
}

// DateFromDays converts a day count back to its civil date. It is the inverse
// of DaysFromDate for every day count produced by it.
func DateFromDays(days int64) (year, month, day int32) {
	y, m, d := civilFromDays(days)
	return int32(y), m, d
}

// ISODayOfWeek extracts the ISO day of the week from a day count:
// 1 is Monday, 7 is Sunday. Day 0 (1970-01-01) is a Thursday (4).
// Floor arithmetic keeps negative day counts on the same 7-day cycle.
func ISODayOfWeek(days int64) int32 {
	return int32(intmath.FloorMod(days+3, 7) + 1)
}

// isoWeeksInYear returns the number of ISO weeks (52 or 53) in weekYear.
// A year has 53 weeks iff January 1 is a Thursday, or a Wednesday in a
// leap year.
func isoWeeksInYear(weekYear int32) int32 {
	dow := ISODayOfWeek(daysFromCivil(int64(weekYear), 1, 1))
	if dow == 4 || (dow == 3 && IsLeapYear(weekYear)) {
		return 53
	}
	return 52
}

// DaysFromWeekDate computes the day count for an ISO week date. Week 1 is the
// week containing the year's first Thursday; weeks run from Monday
// (dayOfWeek 1) to Sunday (7). It returns an error wrapping ErrOutOfRange if
// weekOfYear exceeds the number of ISO weeks in weekYear or any component is
// out of range.
func DaysFromWeekDate(weekYear, weekOfYear, dayOfWeek int32) (int64, error) {
	if !validYear(weekYear) {
		return 0, fmt.Errorf("week year %d outside [%d, %d]: %w", weekYear, MinYear, MaxYear, ErrOutOfRange)
	}
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return 0, fmt.Errorf("day of week %d outside [1, 7]: %w", dayOfWeek, ErrOutOfRange)
	}
	if weeks := isoWeeksInYear(weekYear); weekOfYear < 1 || weekOfYear > weeks {
		return 0, fmt.Errorf("week %d outside [1, %d] of year %d: %w", weekOfYear, weeks, weekYear, ErrOutOfRange)
	}
	// January 4 is always in week 1.
	jan4 := daysFromCivil(int64(weekYear), 1, 4)
	week1Monday := jan4 - int64(ISODayOfWeek(jan4)-1)
	return week1Monday + int64(weekOfYear-1)*7 + int64(dayOfWeek-1), nil
}

// DaysFromWeekOfMonthDate computes the day count for a week-of-month date,
// replicating legacy java.text.SimpleDateFormat semantics. The month grid is
// anchored at the Monday on or before the first of the month; dayOfWeek 1 is
// Monday, 7 is Sunday.
//
// In non-lenient mode, year must be positive, month in [1, 12], dayOfWeek in
// [1, 7], and the resolved day must fall inside the requested month.
//
// In lenient mode, out-of-range months wrap whole years forward or backward
// (13 is January of the following year, -1 is November of the previous year)
// and excess weekOfMonth or dayOfWeek values spill into neighboring months:
// a 5th week of a 4-week February resolves to the first week of March.
func DaysFromWeekOfMonthDate(year, month, weekOfMonth, dayOfWeek int32, lenient bool) (int64, error) {
	if !lenient {
		if year < 1 || year > MaxYear {
			return 0, fmt.Errorf("year %d outside [1, %d]: %w", year, MaxYear, ErrOutOfRange)
		}
		if month < 1 || month > 12 {
			return 0, fmt.Errorf("month %d outside [1, 12]: %w", month, ErrOutOfRange)
		}
		if dayOfWeek < 1 || dayOfWeek > 7 {
			return 0, fmt.Errorf("day of week %d outside [1, 7]: %w", dayOfWeek, ErrOutOfRange)
		}
	}

	// Normalize the month into [1, 12], carrying whole years.
	y := int64(year) + intmath.FloorDiv(int64(month)-1, 12)
	m := intmath.FloorMod(int64(month)-1, 12) + 1
	if y < int64(MinYear) || y > int64(MaxYear) {
		return 0, fmt.Errorf("year %d outside [%d, %d]: %w", y, MinYear, MaxYear, ErrOutOfRange)
	}

	first := daysFromCivil(y, m, 1)
	// The grid starts at the Monday on or before the first of the month.
	grid := first - int64(ISODayOfWeek(first)-1)
	days := grid + int64(weekOfMonth-1)*7 + int64(dayOfWeek-1)

	if !lenient {
		last := first + int64(MaxDayOfMonth(int32(y), int32(m))) - 1
		if days < first || days > last {
			return 0, fmt.Errorf("week %d day %d not in month %d-%02d: %w", weekOfMonth, dayOfWeek, y, m, ErrOutOfRange)
		}
	}
	return days, nil
}

// DaysFromDayOfYear computes the day count for the dayOfYear-th day of year.
func DaysFromDayOfYear(year, dayOfYear int32) (int64, error) {
	if !validYear(year) {
		return 0, fmt.Errorf("year %d outside [%d, %d]: %w", year, MinYear, MaxYear, ErrOutOfRange)
	}
	if !IsValidDayOfYear(year, dayOfYear) {
		return 0, fmt.Errorf("day %d of year %d: %w", dayOfYear, year, ErrOutOfRange)
	}
	return daysFromCivil(int64(year), 1, 1) + int64(dayOfYear-1), nil
}

// LastDayOfMonthFromDate returns the day count of the final day of the given
// date's month. It fails on invalid date components.
func LastDayOfMonthFromDate(year, month, day int32) (int64, error) {
	if _, err := DaysFromDate(year, month, day); err != nil {
		return 0, err
	}
	return daysFromCivil(int64(year), int64(month), int64(MaxDayOfMonth(year, month))), nil
}

// MicrosFromTime returns the cumulative number of microseconds for a time of
// day. It performs no range validation; that is the caller's responsibility.
func MicrosFromTime(hour, minute, second, micros int64) int64 {
	return ((hour*60+minute)*60+second)*1_000_000 + micros
}
