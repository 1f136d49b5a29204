package gdsii

import (
	stderrors "errors"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/gds-stream/errors"
	"github.com/wippyai/gds-stream/gdsii/internal/binary"
)

// Decode parses payload according to the entry's kind and applies its
// constraints. The returned record owns fresh copies of all decoded data.
func (e *Entry) Decode(payload []byte) (Record, error) {
	v, err := e.decodeValue(payload)
	if err != nil {
		return Record{}, errors.WithTag(err, uint16(e.Tag), e.Name)
	}
	if err := e.validate(errors.PhaseDecode, len(payload), v); err != nil {
		return Record{}, err
	}
	return Record{Tag: e.Tag, Value: v}, nil
}

func (e *Entry) decodeValue(payload []byte) (Value, error) {
	// Arity-checked sequences report an empty payload as zero values.
	if len(payload) == 0 && e.CheckData != nil && e.Kind != PayloadNone {
		return Value{Kind: e.Kind}, nil
	}

	v := Value{Kind: e.Kind}
	var err error
	switch e.Kind {
	case PayloadNone:
		if len(payload) != 0 {
			return Value{}, errors.SizeMismatch(errors.PhaseDecode, "marker record carries no payload", 0, len(payload))
		}
	case PayloadBitArray:
		v.Bits, err = ParseBitArray(payload)
	case PayloadInt16:
		v.Int16s, err = ParseInt16s(payload)
	case PayloadInt32:
		v.Int32s, err = ParseInt32s(payload)
	case PayloadReal8:
		v.words, err = parseReal8Words(payload)
		if err == nil {
			v.Real8s = make([]float64, len(v.words))
			for i, w := range v.words {
				v.Real8s[i] = DecodeReal8(w)
			}
		}
	case PayloadASCII:
		v.ASCII, err = ParseASCII(payload)
	case PayloadDateTime:
		v.DateTime, err = ParseDateTime(payload)
	default:
		return Value{}, errors.New(errors.PhaseDecode, errors.KindPayloadKindMismatch).
			Detail("unsupported payload kind %s", e.Kind).
			Build()
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// DecodeRecord decodes one payload for tag.
func DecodeRecord(tag Tag, payload []byte) (Record, error) {
	e, ok := registry[tag]
	if !ok {
		return Record{}, errors.UnknownTag(errors.PhaseDecode, uint16(tag))
	}
	return e.Decode(payload)
}

// ReadRecord reads and decodes a single frame from r. A clean end of input
// before the header returns io.EOF.
func ReadRecord(r io.Reader) (Record, error) {
	return readFrame(binary.NewReader(r))
}

func readFrame(r *binary.Reader) (Record, error) {
	start := r.Position()

	length, tag, err := r.ReadHeader()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			got := int(r.Position() - start)
			return Record{}, errors.WithOffset(
				errors.MalformedHeader("truncated record header", HeaderSize, got, r.WrapError("record header", err)), start)
		}
		return Record{}, errors.IO(errors.PhaseDecode, start, r.WrapError("record header", err))
	}

	name := Tag(tag).String()
	if length < HeaderSize {
		return Record{}, errors.New(errors.PhaseDecode, errors.KindMalformedHeader).
			Tag(tag, name).
			Offset(start).
			Sizes(HeaderSize, int(length)).
			Value(length).
			Detail("record length %d is below the header size", length).
			Build()
	}
	if length%2 != 0 {
		return Record{}, errors.New(errors.PhaseDecode, errors.KindMalformedHeader).
			Tag(tag, name).
			Offset(start).
			Sizes(int(length)+1, int(length)).
			Value(length).
			Detail("record length %d is odd", length).
			Build()
	}

	payloadLen := int(length) - HeaderSize
	payload, err := r.ReadBytes(payloadLen)
	if err != nil {
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
			got := int(r.Position() - start - HeaderSize)
			return Record{}, errors.New(errors.PhaseDecode, errors.KindMalformedHeader).
				Tag(tag, name).
				Offset(start).
				Sizes(payloadLen, got).
				Detail("truncated payload").
				Cause(r.WrapError("record payload", err)).
				Build()
		}
		return Record{}, errors.IO(errors.PhaseDecode, start, r.WrapError("record payload", err))
	}

	rec, err := DecodeRecord(Tag(tag), payload)
	if err != nil {
		return Record{}, errors.WithOffset(err, start)
	}
	return rec, nil
}

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	// StopAtEndLib ends the stream after the ENDLIB record; any bytes that
	// follow (tape padding) are not read.
	StopAtEndLib bool
	// MaxRecords ends the stream after this many records; 0 means no limit.
	MaxRecords int
}

// DefaultDecoderOptions returns the default decoder configuration.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{StopAtEndLib: true}
}

type streamState int

const (
	stateStart streamState = iota
	stateDone
	stateFailed
)

// Decoder reads records sequentially from a stream. A malformed record
// fails the whole stream: the format has no resynchronization marker, so
// once Next returns an error every later call returns the same error.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r      *binary.Reader
	err    error
	opts   DecoderOptions
	offset int64
	count  int
	state  streamState
}

// NewDecoder creates a Decoder with default options.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderWithOptions(r, DefaultDecoderOptions())
}

// NewDecoderWithOptions creates a Decoder with the given options.
func NewDecoderWithOptions(r io.Reader, opts DecoderOptions) *Decoder {
	return &Decoder{r: binary.NewReader(r), opts: opts}
}

// Next returns the next record. It returns io.EOF at a clean end of input,
// after the terminal ENDLIB record or once MaxRecords records were read.
func (d *Decoder) Next() (Record, error) {
	switch d.state {
	case stateDone:
		return Record{}, io.EOF
	case stateFailed:
		return Record{}, d.err
	}
	if d.opts.MaxRecords > 0 && d.count >= d.opts.MaxRecords {
		d.state = stateDone
		return Record{}, io.EOF
	}

	d.offset = d.r.Position()
	rec, err := readFrame(d.r)
	if err == io.EOF {
		d.state = stateDone
		Logger().Debug("gdsii stream ended", zap.Int("records", d.count))
		return Record{}, io.EOF
	}
	if err != nil {
		d.state = stateFailed
		d.err = err
		Logger().Warn("gdsii stream failed",
			zap.Int64("offset", d.offset),
			zap.Int("records", d.count),
			zap.Error(err))
		return Record{}, err
	}

	d.count++
	if ce := Logger().Check(zap.DebugLevel, "gdsii record"); ce != nil {
		ce.Write(zap.Stringer("tag", rec.Tag), zap.Int64("offset", d.offset))
	}
	if rec.Tag == TagEndLib && d.opts.StopAtEndLib {
		d.state = stateDone
	}
	return rec, nil
}

// Offset returns the stream offset of the record most recently read.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Count returns the number of records decoded so far.
func (d *Decoder) Count() int {
	return d.count
}

// Err returns the error that failed the stream, or nil.
func (d *Decoder) Err() error {
	return d.err
}

// ReadAll decodes records until ENDLIB or end of input. On failure it
// returns the records decoded before the malformed one.
func ReadAll(r io.Reader) ([]Record, error) {
	d := NewDecoder(r)
	var recs []Record
	for {
		rec, err := d.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}
