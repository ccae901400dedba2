package encode

import (
	"fmt"
	"github.com/davejbax/go-utcdatetime/internal/spec"
	"time"
)

// AsRecord converts t to UTC and takes its civil fields, dropping anything below a second. [ErrOutOfRange] is
// returned if the year cannot be held in a [spec.Record]; no other range checks are made.
func AsRecord(t time.Time) (spec.Record, error) {
	t = t.UTC()

	if t.Year() < 0 || t.Year() > spec.MaxYear {
		return spec.Record{}, fmt.Errorf("%w: year %d", ErrOutOfRange, t.Year())
	}

	return spec.Record{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
	}, nil
}
