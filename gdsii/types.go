package gdsii

import (
	"fmt"
	"time"
)

// Tag identifies a record: record type in the high byte, data type in the low byte.
type Tag uint16

// RecordType returns the record number (high byte).
func (t Tag) RecordType() byte {
	return byte(t >> 8)
}

// DataType returns the wire data type code (low byte).
func (t Tag) DataType() byte {
	return byte(t)
}

// String returns the registered name, or the hex code for unknown tags.
func (t Tag) String() string {
	if e, ok := registry[t]; ok {
		return e.Name
	}
	return fmt.Sprintf("0x%04X", uint16(t))
}

// PayloadKind is the field-type family a record payload is interpreted as.
type PayloadKind byte

const (
	PayloadNone PayloadKind = iota
	PayloadBitArray
	PayloadInt16
	PayloadInt32
	PayloadReal8
	PayloadASCII
	PayloadDateTime
)

var payloadKindNames = [...]string{
	PayloadNone:     "nodata",
	PayloadBitArray: "bitarray",
	PayloadInt16:    "int16",
	PayloadInt32:    "int32",
	PayloadReal8:    "real8",
	PayloadASCII:    "ascii",
	PayloadDateTime: "datetime",
}

func (k PayloadKind) String() string {
	if int(k) < len(payloadKindNames) {
		return payloadKindNames[k]
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

// dateTimeSize is the payload size of one date-time sextuple.
const dateTimeSize = 12

// DateTime is the six 16-bit fields of a BGNLIB/BGNSTR timestamp.
type DateTime struct {
	Year   uint16
	Month  uint16
	Day    uint16
	Hour   uint16
	Minute uint16
	Second uint16
}

// DateTimeOf converts t to a DateTime. The year is stored in full.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{
		Year:   uint16(t.Year()),
		Month:  uint16(t.Month()),
		Day:    uint16(t.Day()),
		Hour:   uint16(t.Hour()),
		Minute: uint16(t.Minute()),
		Second: uint16(t.Second()),
	}
}

// Time converts the timestamp to a UTC time. Two-digit years written by old
// tools (values below 1900) are taken as offsets from 1900.
func (dt DateTime) Time() time.Time {
	year := int(dt.Year)
	if year < 1900 {
		year += 1900
	}
	return time.Date(year, time.Month(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second), 0, time.UTC)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// Value is a decoded payload. Kind selects which member is populated; the
// others are zero.
type Value struct {
	Int16s   []int16
	Int32s   []int32
	Real8s   []float64
	ASCII    []byte
	DateTime DateTime
	Bits     uint16
	Kind     PayloadKind

	// real8 words the value was decoded from, re-emitted when unchanged
	words []uint64
}

// Len returns the number of values held (1 for bit arrays and date-times, 0 for no data).
func (v Value) Len() int {
	switch v.Kind {
	case PayloadBitArray, PayloadDateTime:
		return 1
	case PayloadInt16:
		return len(v.Int16s)
	case PayloadInt32:
		return len(v.Int32s)
	case PayloadReal8:
		return len(v.Real8s)
	case PayloadASCII:
		return len(v.ASCII)
	default:
		return 0
	}
}

// Record is one decoded frame.
type Record struct {
	Value Value
	Tag   Tag
}

// Kind returns the payload kind of the record's value.
func (r Record) Kind() PayloadKind {
	return r.Value.Kind
}

// Text returns an ASCII payload as a string.
func (r Record) Text() string {
	return string(r.Value.ASCII)
}

// Int returns the single 16- or 32-bit integer of a scalar record such as
// LAYER or WIDTH. ok is false for other payloads.
func (r Record) Int() (v int32, ok bool) {
	switch r.Value.Kind {
	case PayloadInt16:
		if len(r.Value.Int16s) == 1 {
			return int32(r.Value.Int16s[0]), true
		}
	case PayloadInt32:
		if len(r.Value.Int32s) == 1 {
			return r.Value.Int32s[0], true
		}
	}
	return 0, false
}

// Points returns the XY payload as coordinate pairs. A trailing unpaired
// value is dropped.
func (r Record) Points() [][2]int32 {
	vals := r.Value.Int32s
	pts := make([][2]int32, len(vals)/2)
	for i := range pts {
		pts[i] = [2]int32{vals[2*i], vals[2*i+1]}
	}
	return pts
}
