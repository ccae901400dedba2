package utcdatetime

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/davejbax/go-utcdatetime/internal/spec"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"gopkg.in/yaml.v3"
	"io"
)

var (
	errNotScalar = errors.New("date and time must be a YAML scalar")
)

// constructed returns an error wrapping [ErrYear] for the zero DateTime
func (d DateTime) constructed() error {
	if d.IsZero() {
		return fmt.Errorf("%w: %d", ErrYear, d.year)
	}

	return nil
}

// MarshalText implements [encoding.TextMarshaler]. The text form is the same as [DateTime.String]. The zero DateTime
// cannot be marshalled.
func (d DateTime) MarshalText() ([]byte, error) {
	if err := d.constructed(); err != nil {
		return nil, err
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting anything [Parse] accepts.
func (d *DateTime) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// MarshalYAML implements [yaml.Marshaler], writing the date and time as a plain string.
func (d DateTime) MarshalYAML() (interface{}, error) {
	if err := d.constructed(); err != nil {
		return nil, err
	}

	return d.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. The node must be a scalar that [Parse] accepts.
func (d *DateTime) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", errNotScalar, value.Line)
	}

	return d.UnmarshalText([]byte(value.Value))
}

// WriteTo writes d as a packed binary record: a big endian 16-bit year followed by one byte each for the month, day,
// hour, minute and second. Nothing is written for the zero DateTime.
func (d DateTime) WriteTo(w io.Writer) (int64, error) {
	if err := d.constructed(); err != nil {
		return 0, err
	}

	cw := counter.NewWriter(w)

	record := d.record()
	if err := struc.Pack(cw, &record); err != nil {
		return cw.Count(), fmt.Errorf("could not pack structure: %w", err)
	}

	return cw.Count(), nil
}

// ReadFrom reads a binary record written by [DateTime.WriteTo] and validates it with [New]. d is left unchanged if an
// error is returned.
func (d *DateTime) ReadFrom(r io.Reader) (int64, error) {
	buff := make([]byte, spec.RecordSize)

	read, err := io.ReadFull(r, buff)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return int64(read), fmt.Errorf("%w: read %d of %d bytes", ErrShortRecord, read, spec.RecordSize)
	} else if err != nil {
		return int64(read), fmt.Errorf("could not read record: %w", err)
	}

	var record spec.Record
	if err := struc.Unpack(bytes.NewReader(buff), &record); err != nil {
		return int64(read), fmt.Errorf("could not unpack structure: %w", err)
	}

	parsed, err := fromRecord(record)
	if err != nil {
		return int64(read), err
	}

	*d = parsed
	return int64(read), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] using the record format of [DateTime.WriteTo].
func (d DateTime) MarshalBinary() ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, spec.RecordSize))
	if _, err := d.WriteTo(buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. The data must be exactly one record long.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	if len(data) > spec.RecordSize {
		return fmt.Errorf("%w: %d trailing bytes", ErrLongRecord, len(data)-spec.RecordSize)
	}

	_, err := d.ReadFrom(bytes.NewReader(data))
	return err
}
