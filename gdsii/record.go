package gdsii

import (
	"github.com/wippyai/gds-stream/errors"
)

// NewRecord builds a record after checking that v's kind is the kind
// registered for tag. Slices in v are copied.
func NewRecord(tag Tag, v Value) (Record, error) {
	e, err := Lookup(tag)
	if err != nil {
		return Record{}, errors.UnknownTag(errors.PhaseEncode, uint16(tag))
	}
	if v.Kind != e.Kind {
		return Record{}, errors.PayloadKindMismatch(uint16(tag), e.Name, e.Kind.String(), v.Kind.String())
	}
	return Record{Tag: tag, Value: cloneValue(v)}, nil
}

// MustRecord panics if err is non-nil. It is intended for records built from
// constants, e.g. MustRecord(NewNoData(TagEndLib)).
func MustRecord(r Record, err error) Record {
	if err != nil {
		panic(err)
	}
	return r
}

// NewNoData builds a marker record such as BOUNDARY or ENDEL.
func NewNoData(tag Tag) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadNone})
}

// NewBitArray builds a bit array record such as STRANS.
func NewBitArray(tag Tag, bits uint16) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadBitArray, Bits: bits})
}

// NewInt16s builds a 16-bit integer record such as LAYER.
func NewInt16s(tag Tag, vals ...int16) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadInt16, Int16s: vals})
}

// NewInt32s builds a 32-bit integer record such as WIDTH or XY.
func NewInt32s(tag Tag, vals ...int32) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadInt32, Int32s: vals})
}

// NewReal8s builds a real record such as MAG or UNITS.
func NewReal8s(tag Tag, vals ...float64) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadReal8, Real8s: vals})
}

// NewASCII builds a text record from raw bytes.
func NewASCII(tag Tag, text []byte) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadASCII, ASCII: text})
}

// NewString builds a text record such as LIBNAME or STRNAME.
func NewString(tag Tag, text string) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadASCII, ASCII: []byte(text)})
}

// NewDateTime builds a BGNLIB or BGNSTR record.
func NewDateTime(tag Tag, dt DateTime) (Record, error) {
	return NewRecord(tag, Value{Kind: PayloadDateTime, DateTime: dt})
}

func cloneValue(v Value) Value {
	out := Value{Kind: v.Kind, Bits: v.Bits, DateTime: v.DateTime}
	if v.Int16s != nil {
		out.Int16s = append([]int16(nil), v.Int16s...)
	}
	if v.Int32s != nil {
		out.Int32s = append([]int32(nil), v.Int32s...)
	}
	if v.Real8s != nil {
		out.Real8s = append([]float64(nil), v.Real8s...)
	}
	if v.ASCII != nil {
		out.ASCII = append([]byte(nil), v.ASCII...)
	}
	if v.words != nil {
		out.words = append([]uint64(nil), v.words...)
	}
	return out
}
