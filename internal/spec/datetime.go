package spec

// Record is the packed binary form of a date and time: a big endian year followed by one byte for each of the
// remaining civil fields. There is no time zone offset; every Record is UTC.
//
// Record can be encoded by the [struc] library.
type Record struct {
	Year   uint16 `struc:"uint16,big"`
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// RecordSize is the number of bytes a packed [Record] occupies.
const RecordSize = 7
