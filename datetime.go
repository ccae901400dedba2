// Package utcdatetime provides a UTC civil date and time with one-second precision, from 1970 to the year 65535.
//
// A [DateTime] can only be obtained through [New], [Parse] or [FromTime], all of which validate every field, so a
// DateTime other than the zero value is always a real point in time. Seconds since the epoch are counted on the
// proleptic Gregorian calendar with no leap seconds.
package utcdatetime

import (
	"cmp"
	"fmt"
	"github.com/davejbax/go-utcdatetime/internal/calendar"
	"github.com/davejbax/go-utcdatetime/internal/encode"
	"github.com/davejbax/go-utcdatetime/internal/spec"
	"time"
)

// DateTime is an immutable UTC date and time. DateTime values are comparable with ==, and two values are equal
// exactly when they represent the same instant.
//
// The zero DateTime was not produced by a constructor and does not represent a valid time; see [DateTime.IsZero].
type DateTime struct {
	year   uint16
	month  uint8
	day    uint8
	hour   uint8
	minute uint8
	second uint8
}

// New returns the DateTime with the given fields. Fields are checked in order from year to second, and the error for
// the first invalid field is returned: a month of 13 with a day of 99 yields [ErrMonth], not [ErrDay].
func New(year uint16, month, day, hour, minute, second uint8) (DateTime, error) {
	if year < spec.EpochYear {
		return DateTime{}, fmt.Errorf("%w: %d", ErrYear, year)
	}

	if month == 0 || month > 12 {
		return DateTime{}, fmt.Errorf("%w: %d", ErrMonth, month)
	}

	if day == 0 || int(day) > calendar.DaysInMonth(year, month) {
		return DateTime{}, fmt.Errorf("%w: %d", ErrDay, day)
	}

	if hour > 23 {
		return DateTime{}, fmt.Errorf("%w: %d", ErrHour, hour)
	}

	if minute > 59 {
		return DateTime{}, fmt.Errorf("%w: %d", ErrMinute, minute)
	}

	if second > 59 {
		return DateTime{}, fmt.Errorf("%w: %d", ErrSecond, second)
	}

	return DateTime{
		year:   year,
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
	}, nil
}

// FromTime returns the DateTime for t in UTC, truncated to the second.
func FromTime(t time.Time) (DateTime, error) {
	record, err := encode.AsRecord(t)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %d", ErrYear, t.UTC().Year())
	}

	return fromRecord(record)
}

func fromRecord(r spec.Record) (DateTime, error) {
	return New(r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second)
}

func (d DateTime) record() spec.Record {
	return spec.Record{
		Year:   d.year,
		Month:  d.month,
		Day:    d.day,
		Hour:   d.hour,
		Minute: d.minute,
		Second: d.second,
	}
}

func (d DateTime) Year() uint16 {
	return d.year
}

func (d DateTime) Month() time.Month {
	return time.Month(d.month)
}

func (d DateTime) Day() int {
	return int(d.day)
}

func (d DateTime) Hour() int {
	return int(d.hour)
}

func (d DateTime) Minute() int {
	return int(d.minute)
}

func (d DateTime) Second() int {
	return int(d.second)
}

// IsZero reports whether d is the zero DateTime, which no constructor returns on success.
func (d DateTime) IsZero() bool {
	return d == DateTime{}
}

// YearDay returns the day of the year, from 1 to 365 (366 in leap years).
func (d DateTime) YearDay() int {
	yday := int(d.day)
	for m := uint8(1); m < d.month; m++ {
		yday += calendar.DaysInMonth(d.year, m)
	}

	return yday
}

// Unix returns the number of seconds elapsed since 1970-01-01 00:00:00 UTC. The zero DateTime returns an error
// wrapping [ErrYear].
func (d DateTime) Unix() (uint64, error) {
	// The zero value bypasses New; everything else has already been checked
	if d.year < spec.EpochYear {
		return 0, fmt.Errorf("%w: %d", ErrYear, d.year)
	}

	return calendar.EpochSeconds(d.year, d.month, d.day, d.hour, d.minute, d.second), nil
}

// Unix32 is [DateTime.Unix] for callers that store seconds in an unsigned 32-bit integer. Times after
// 2106-02-07 06:28:15 return [ErrEpochOverflow] rather than wrapping around.
func (d DateTime) Unix32() (uint32, error) {
	seconds, err := d.Unix()
	if err != nil {
		return 0, err
	}

	if seconds > spec.MaxUnix32 {
		return 0, fmt.Errorf("%w: %s", ErrEpochOverflow, d)
	}

	return uint32(seconds), nil
}

// Weekday returns the day of the week, where Sunday is 0 and Monday to Saturday are 1 to 6. It panics if d is the
// zero DateTime.
func (d DateTime) Weekday() time.Weekday {
	seconds, err := d.Unix()
	if err != nil {
		panic(fmt.Sprintf("weekday of an unconstructed DateTime: %v", err))
	}

	return time.Weekday(calendar.Weekday(seconds))
}

// Time returns d as a [time.Time] in UTC.
func (d DateTime) Time() time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), int(d.hour), int(d.minute), int(d.second), 0, time.UTC)
}

// Compare returns -1 if d is before u, +1 if d is after u, and 0 if they are the same.
func (d DateTime) Compare(u DateTime) int {
	dFields := [...]int{int(d.year), int(d.month), int(d.day), int(d.hour), int(d.minute), int(d.second)}
	uFields := [...]int{int(u.year), int(u.month), int(u.day), int(u.hour), int(u.minute), int(u.second)}

	for i := range dFields {
		if c := cmp.Compare(dFields[i], uFields[i]); c != 0 {
			return c
		}
	}

	return 0
}

func (d DateTime) Equal(u DateTime) bool {
	return d == u
}

func (d DateTime) Before(u DateTime) bool {
	return d.Compare(u) < 0
}

func (d DateTime) After(u DateTime) bool {
	return d.Compare(u) > 0
}

// String formats d as YYYY-MM-DD HH:MM:SS. The year is not padded.
func (d DateTime) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d", d.year, d.month, d.day, d.hour, d.minute, d.second)
}
