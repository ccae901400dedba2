package encode

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange indicates that a value does not fit in the integer width of the field it is destined for
var ErrOutOfRange = errors.New("value does not fit in field")

// AsUInt8 converts a string of decimal digits to an unsigned 8-bit integer
func AsUInt8(digits string) (uint8, error) {
	value, err := asUInt(digits, 8)
	return uint8(value), err
}

// AsUInt16 converts a string of decimal digits to an unsigned 16-bit integer
func AsUInt16(digits string) (uint16, error) {
	value, err := asUInt(digits, 16)
	return uint16(value), err
}

func asUInt(digits string, bitSize int) (uint64, error) {
	value, err := strconv.ParseUint(digits, 10, bitSize)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s exceeds %d bits", ErrOutOfRange, digits, bitSize)
	} else if err != nil {
		return 0, fmt.Errorf("could not parse %q as a decimal number: %w", digits, err)
	}

	return value, nil
}
