package gdsii

import (
	stderrors "errors"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/gds-stream/errors"
	wire "github.com/wippyai/gds-stream/gdsii/internal/binary"
)

// ErrStreamEnded is returned when writing after the terminal ENDLIB record.
var ErrStreamEnded = stderrors.New("gdsii: stream already ended with ENDLIB")

// Encode returns the record's frame: header followed by the payload.
// The registry constraints are applied so the output always decodes.
func (r Record) Encode() ([]byte, error) {
	payload, err := r.payload()
	if err != nil {
		return nil, err
	}
	w := wire.NewWriterSize(HeaderSize + len(payload))
	w.WriteHeader(uint16(HeaderSize+len(payload)), uint16(r.Tag))
	w.WriteBytes(payload)
	return w.Bytes(), nil
}

// WriteTo writes the record's frame to w.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	frame, err := r.Encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(frame)
	if err != nil {
		return int64(n), errors.WithTag(errors.IO(errors.PhaseEncode, 0, err), uint16(r.Tag), r.Tag.String())
	}
	return int64(n), nil
}

func (r Record) payload() ([]byte, error) {
	e, ok := registry[r.Tag]
	if !ok {
		return nil, errors.UnknownTag(errors.PhaseEncode, uint16(r.Tag))
	}
	if r.Value.Kind != e.Kind {
		return nil, errors.PayloadKindMismatch(uint16(r.Tag), e.Name, e.Kind.String(), r.Value.Kind.String())
	}

	payload, err := encodeValue(r.Value)
	if err != nil {
		return nil, errors.WithTag(err, uint16(r.Tag), e.Name)
	}
	if len(payload) == 0 && e.Kind != PayloadNone && e.CheckData == nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindSizeMismatch).
			Tag(uint16(r.Tag), e.Name).
			Sizes(kindStride(e.Kind), 0).
			Detail("%s payload is empty", e.Kind).
			Build()
	}
	if len(payload) > MaxPayloadSize {
		return nil, errors.New(errors.PhaseEncode, errors.KindSizeMismatch).
			Tag(uint16(r.Tag), e.Name).
			Sizes(MaxPayloadSize, len(payload)).
			Detail("payload exceeds the 16-bit record length").
			Build()
	}
	if err := e.validate(errors.PhaseEncode, len(payload), r.Value); err != nil {
		return nil, err
	}
	return payload, nil
}

func encodeValue(v Value) ([]byte, error) {
	switch v.Kind {
	case PayloadNone:
		return nil, nil
	case PayloadBitArray:
		return PackBitArray(v.Bits), nil
	case PayloadInt16:
		return PackInt16s(v.Int16s), nil
	case PayloadInt32:
		return PackInt32s(v.Int32s), nil
	case PayloadReal8:
		return packReal8Value(v)
	case PayloadASCII:
		return PackASCII(v.ASCII), nil
	case PayloadDateTime:
		return PackDateTime(v.DateTime), nil
	default:
		return nil, errors.New(errors.PhaseEncode, errors.KindPayloadKindMismatch).
			Detail("unsupported payload kind %s", v.Kind).
			Build()
	}
}

// packReal8Value re-emits the original words of decoded values that were
// not changed, so unnormalized words round-trip byte for byte.
func packReal8Value(v Value) ([]byte, error) {
	w := wire.NewWriterSize(8 * len(v.Real8s))
	for i, f := range v.Real8s {
		var word uint64
		if i < len(v.words) && DecodeReal8(v.words[i]) == f {
			word = v.words[i]
		} else {
			var err error
			if word, err = EncodeReal8(f); err != nil {
				return nil, err
			}
		}
		w.WriteU64(word)
	}
	return w.Bytes(), nil
}

func kindStride(k PayloadKind) int {
	switch k {
	case PayloadInt32:
		return 4
	case PayloadReal8:
		return 8
	case PayloadDateTime:
		return dateTimeSize
	default:
		return 2
	}
}

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// StopAtEndLib rejects records written after ENDLIB.
	StopAtEndLib bool
}

// DefaultEncoderOptions returns the default encoder configuration.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{StopAtEndLib: true}
}

// Encoder writes records sequentially to a stream. After a write failure
// every later call returns the same error. An Encoder is not safe for
// concurrent use.
type Encoder struct {
	w      io.Writer
	err    error
	opts   EncoderOptions
	offset int64
	count  int
	state  streamState
}

// NewEncoder creates an Encoder with default options.
func NewEncoder(w io.Writer) *Encoder {
	return NewEncoderWithOptions(w, DefaultEncoderOptions())
}

// NewEncoderWithOptions creates an Encoder with the given options.
func NewEncoderWithOptions(w io.Writer, opts EncoderOptions) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Write encodes rec and writes its frame. A record that fails validation
// is rejected without writing anything and does not fail the stream.
func (e *Encoder) Write(rec Record) error {
	switch e.state {
	case stateDone:
		return ErrStreamEnded
	case stateFailed:
		return e.err
	}

	frame, err := rec.Encode()
	if err != nil {
		return errors.WithOffset(err, e.offset)
	}
	n, err := e.w.Write(frame)
	e.offset += int64(n)
	if err != nil {
		e.state = stateFailed
		e.err = errors.WithTag(errors.IO(errors.PhaseEncode, e.offset, err), uint16(rec.Tag), rec.Tag.String())
		Logger().Warn("gdsii write failed", zap.Int64("offset", e.offset), zap.Error(err))
		return e.err
	}

	e.count++
	if rec.Tag == TagEndLib && e.opts.StopAtEndLib {
		e.state = stateDone
	}
	return nil
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// Count returns the number of records written so far.
func (e *Encoder) Count() int {
	return e.count
}

// WriteAll writes recs to w in order.
func WriteAll(w io.Writer, recs []Record) error {
	enc := NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
