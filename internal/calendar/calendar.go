// Package calendar holds the proleptic Gregorian arithmetic behind the public date-time type. Its functions assume
// their inputs were range-checked by the caller: an out-of-range month is a bug, not bad input, and panics.
package calendar

import (
	"fmt"
	"github.com/davejbax/go-utcdatetime/internal/spec"
)

// IsLeapYear reports whether year has 366 days: divisible by 4 but not by 100, or divisible by 400.
func IsLeapYear(year uint16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func DaysInYear(year uint16) int {
	if IsLeapYear(year) {
		return 366
	}

	return 365
}

// DaysInMonth returns the length of month in year. It panics if month is outside [1, 12].
func DaysInMonth(year uint16, month uint8) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		panic(fmt.Sprintf("month %d out of range reached calendar lookup", month))
	}
}

// EpochSeconds counts the seconds between 1970-01-01 00:00:00 UTC and the given civil time, ignoring leap seconds.
// The year must not be before 1970 and the month must be in [1, 12]; day, hour, minute and second are taken as given.
func EpochSeconds(year uint16, month, day, hour, minute, second uint8) uint64 {
	if year < spec.EpochYear {
		panic(fmt.Sprintf("year %d is before the epoch", year))
	}

	var total uint64

	for y := uint16(spec.EpochYear); y < year; y++ {
		total += uint64(DaysInYear(y)) * spec.SecondsPerDay
	}

	for m := uint8(1); m < month; m++ {
		total += uint64(DaysInMonth(year, m)) * spec.SecondsPerDay
	}

	total += (uint64(day) - 1) * spec.SecondsPerDay
	total += uint64(hour)*spec.SecondsPerHour + uint64(minute)*spec.SecondsPerMinute + uint64(second)

	return total
}

// Weekday returns the day of the week for a count of seconds since the epoch, with Sunday as 0 and Monday as 1.
func Weekday(epochSeconds uint64) int {
	days := (epochSeconds % spec.SecondsPerWeek) / spec.SecondsPerDay
	return int((uint64(spec.EpochWeekday) + days) % 7)
}
