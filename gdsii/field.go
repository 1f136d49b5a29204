package gdsii

import (
	"encoding/binary"

	"github.com/wippyai/gds-stream/errors"
	wire "github.com/wippyai/gds-stream/gdsii/internal/binary"
)

// Primitive field codec. Every function is pure: parsers return fresh
// allocations and never alias the input; packers always emit big-endian.

// ParseBitArray decodes a 2-byte bit array.
func ParseBitArray(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, errors.SizeMismatch(errors.PhaseDecode, "bit array", 2, len(data))
	}
	return binary.BigEndian.Uint16(data), nil
}

// PackBitArray encodes a bit array.
func PackBitArray(v uint16) []byte {
	w := wire.NewWriterSize(2)
	w.WriteU16(v)
	return w.Bytes()
}

// ParseInt16s decodes a non-empty sequence of big-endian 16-bit integers.
func ParseInt16s(data []byte) ([]int16, error) {
	if err := checkStride(data, 2, "int16 sequence"); err != nil {
		return nil, err
	}
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.BigEndian.Uint16(data[2*i:]))
	}
	return out, nil
}

// PackInt16s encodes a sequence of 16-bit integers.
func PackInt16s(vals []int16) []byte {
	w := wire.NewWriterSize(2 * len(vals))
	for _, v := range vals {
		w.WriteU16(uint16(v))
	}
	return w.Bytes()
}

// ParseInt32s decodes a non-empty sequence of big-endian 32-bit integers.
func ParseInt32s(data []byte) ([]int32, error) {
	if err := checkStride(data, 4, "int32 sequence"); err != nil {
		return nil, err
	}
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(data[4*i:]))
	}
	return out, nil
}

// PackInt32s encodes a sequence of 32-bit integers.
func PackInt32s(vals []int32) []byte {
	w := wire.NewWriterSize(4 * len(vals))
	for _, v := range vals {
		w.WriteU32(uint32(v))
	}
	return w.Bytes()
}

// ParseReal8s decodes a non-empty sequence of GDSII real words.
func ParseReal8s(data []byte) ([]float64, error) {
	words, err := parseReal8Words(data)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(words))
	for i, w := range words {
		out[i] = DecodeReal8(w)
	}
	return out, nil
}

// PackReal8s encodes a sequence of floats as GDSII real words.
func PackReal8s(vals []float64) ([]byte, error) {
	w := wire.NewWriterSize(8 * len(vals))
	for _, v := range vals {
		word, err := EncodeReal8(v)
		if err != nil {
			return nil, err
		}
		w.WriteU64(word)
	}
	return w.Bytes(), nil
}

func parseReal8Words(data []byte) ([]uint64, error) {
	if err := checkStride(data, 8, "real8 sequence"); err != nil {
		return nil, err
	}
	words := make([]uint64, len(data)/8)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(data[8*i:])
	}
	return words, nil
}

// ParseASCII returns the text of an ASCII payload with exactly one
// trailing NUL pad byte removed, if present.
func ParseASCII(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.SizeMismatch(errors.PhaseDecode, "ascii payload is empty", 1, 0)
	}
	n := len(data)
	if data[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, data[:n])
	return out, nil
}

// PackASCII pads odd-length text with one NUL byte. Even-length input is
// returned as a copy, unchanged.
func PackASCII(text []byte) []byte {
	w := wire.NewWriterSize(len(text) + 1)
	w.WriteBytes(text)
	if w.Len()%2 == 1 {
		w.Byte(0)
	}
	return w.Bytes()
}

// ParseDateTime decodes the 12-byte year, month, day, hour, minute, second sextuple.
func ParseDateTime(data []byte) (DateTime, error) {
	if len(data) != dateTimeSize {
		return DateTime{}, errors.SizeMismatch(errors.PhaseDecode, "date-time", dateTimeSize, len(data))
	}
	field := func(i int) uint16 { return binary.BigEndian.Uint16(data[2*i:]) }
	return DateTime{
		Year:   field(0),
		Month:  field(1),
		Day:    field(2),
		Hour:   field(3),
		Minute: field(4),
		Second: field(5),
	}, nil
}

// PackDateTime encodes a date-time sextuple.
func PackDateTime(dt DateTime) []byte {
	w := wire.NewWriterSize(dateTimeSize)
	for _, v := range [...]uint16{dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second} {
		w.WriteU16(v)
	}
	return w.Bytes()
}

func checkStride(data []byte, stride int, what string) error {
	if len(data) == 0 {
		return errors.SizeMismatch(errors.PhaseDecode, what+" is empty", stride, 0)
	}
	if rem := len(data) % stride; rem != 0 {
		return errors.SizeMismatch(errors.PhaseDecode,
			what+" length is not a multiple of the element size", len(data)-rem+stride, len(data))
	}
	return nil
}
