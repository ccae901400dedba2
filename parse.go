package utcdatetime

import (
	"fmt"
	"github.com/davejbax/go-utcdatetime/internal/encode"
)

// fieldCount is the number of numbers in a time string: year, month, day, hour, minute and second
const fieldCount = 6

// Parse reads a DateTime from a string containing the year, month, day, hour, minute and second as decimal numbers,
// in that order. Anything that is not an ASCII digit separates numbers, so "2020-12-31 23:59:59",
// "2020/12/31 23:59:59" and "时间:2020年12月31日23点59分59秒" all parse to the same value.
//
// [ErrTimeString] is returned if the string does not hold exactly six numbers, or if a number is too large for its
// field (for example a year above 65535). Otherwise the result of [New] is returned unchanged.
func Parse(text string) (DateTime, error) {
	tokens := encode.DigitRuns(text)
	if len(tokens) != fieldCount {
		return DateTime{}, fmt.Errorf("%w: found %d numbers in %q, expected %d", ErrTimeString, len(tokens), text, fieldCount)
	}

	year, err := encode.AsUInt16(tokens[0])
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: year: %w", ErrTimeString, err)
	}

	names := [...]string{"month", "day", "hour", "minute", "second"}

	var fields [len(names)]uint8
	for i, name := range names {
		value, err := encode.AsUInt8(tokens[i+1])
		if err != nil {
			return DateTime{}, fmt.Errorf("%w: %s: %w", ErrTimeString, name, err)
		}

		fields[i] = value
	}

	return New(year, fields[0], fields[1], fields[2], fields[3], fields[4])
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(text string) DateTime {
	d, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("could not parse %q: %v", text, err))
	}

	return d
}
