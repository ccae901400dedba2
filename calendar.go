package utcdatetime

import (
	"fmt"
	"github.com/davejbax/go-utcdatetime/internal/calendar"
)

// IsLeapYear reports whether year is a leap year in the Gregorian calendar: divisible by 4 but not by 100, or
// divisible by 400.
func IsLeapYear(year uint16) bool {
	return calendar.IsLeapYear(year)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year uint16) int {
	return calendar.DaysInYear(year)
}

// DaysInMonth returns the number of days in the given month of year. Months are numbered from 1; any other month
// returns an error wrapping [ErrMonth].
func DaysInMonth(year uint16, month uint8) (int, error) {
	if month == 0 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrMonth, month)
	}

	return calendar.DaysInMonth(year, month), nil
}
