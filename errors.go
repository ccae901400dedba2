package utcdatetime

import "errors"

// Each field of a [DateTime] has its own error, so that callers can tell which constraint was violated with
// [errors.Is]. Returned errors wrap these with the offending value.
var (
	ErrYear   = errors.New("year number error: must be between 1970 and 65535")
	ErrMonth  = errors.New("month number error: must be between 1 and 12")
	ErrDay    = errors.New("day number error: must be between 1 and the number of days in the month")
	ErrHour   = errors.New("hour number error: must be between 0 and 23")
	ErrMinute = errors.New("minute number error: must be between 0 and 59")
	ErrSecond = errors.New("second number error: must be between 0 and 59")

	// ErrTimeString indicates that a time string did not hold exactly six numbers, or that one of them could not fit
	// in its field
	ErrTimeString = errors.New("the format of the input time string is not standardized")

	// ErrEpochOverflow indicates that a date and time is too late to be represented as an unsigned 32-bit count of
	// seconds since the epoch
	ErrEpochOverflow = errors.New("seconds since epoch do not fit in 32 bits")

	// ErrShortRecord indicates that a binary record ended before all of its fields were read
	ErrShortRecord = errors.New("binary record is too short")

	// ErrLongRecord indicates that binary data continued past the end of a record
	ErrLongRecord = errors.New("binary record is too long")
)
