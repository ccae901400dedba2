package spec

import "time"

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay
)

// Representable years. Years are held in 16 bits; the calendar starts at the Unix epoch.
const (
	EpochYear = 1970
	MaxYear   = 1<<16 - 1
)

// EpochWeekday is the day of the week of 1970-01-01
const EpochWeekday = time.Thursday

// MaxUnix32 is the last second representable as an unsigned 32-bit epoch count: 2106-02-07 06:28:15 UTC
const MaxUnix32 = 1<<32 - 1
