package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // stream to Record
	PhaseEncode   Phase = "encode"   // Record to stream
	PhaseRegistry Phase = "registry" // tag lookup
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedHeader     Kind = "malformed_header"
	KindSizeMismatch        Kind = "size_mismatch"
	KindArityViolation      Kind = "arity_violation"
	KindUnknownTag          Kind = "unknown_tag"
	KindPayloadKindMismatch Kind = "payload_kind_mismatch"
	KindEncodingRange       Kind = "encoding_range"
	KindIO                  Kind = "io"
)

// Sentinels for errors.Is. They match any phase.
var (
	ErrMalformedHeader     = &Error{Kind: KindMalformedHeader}
	ErrSizeMismatch        = &Error{Kind: KindSizeMismatch}
	ErrArityViolation      = &Error{Kind: KindArityViolation}
	ErrUnknownTag          = &Error{Kind: KindUnknownTag}
	ErrPayloadKindMismatch = &Error{Kind: KindPayloadKindMismatch}
	ErrEncodingRange       = &Error{Kind: KindEncodingRange}
	ErrIO                  = &Error{Kind: KindIO}
)

// Error is the structured error type used by the codec.
// Expected and Actual hold byte sizes or value counts depending on Kind;
// they are only meaningful when HasSizes is set.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TagName  string
	Detail   string
	Offset   int64
	Expected int
	Actual   int
	Tag      uint16
	HasTag   bool
	HasSizes bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HasTag {
		b.WriteString(" tag ")
		if e.TagName != "" {
			b.WriteString(e.TagName)
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%04X", e.Tag)
	}

	if e.Offset > 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.HasSizes {
		fmt.Fprintf(&b, ": expected %d, got %d", e.Expected, e.Actual)
	}

	if e.Detail != "" {
		if e.HasSizes {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Kinds must be equal; the
// phase is compared only when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Phase == "" || t.Phase == e.Phase
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Tag sets the record tag and its registry name (may be empty).
func (b *Builder) Tag(tag uint16, name string) *Builder {
	b.err.Tag = tag
	b.err.TagName = name
	b.err.HasTag = true
	return b
}

// Sizes sets the expected and actual size or count.
func (b *Builder) Sizes(expected, actual int) *Builder {
	b.err.Expected = expected
	b.err.Actual = actual
	b.err.HasSizes = true
	return b
}

// Offset sets the stream offset of the offending record.
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedHeader creates a malformed header error
func MalformedHeader(detail string, expected, actual int, cause error) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindMalformedHeader,
		Detail:   detail,
		Expected: expected,
		Actual:   actual,
		HasSizes: true,
		Cause:    cause,
	}
}

// SizeMismatch creates a payload size error without tag context.
// Callers that know the tag attach it with WithTag.
func SizeMismatch(phase Phase, detail string, expected, actual int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindSizeMismatch,
		Detail:   detail,
		Expected: expected,
		Actual:   actual,
		HasSizes: true,
	}
}

// ArityViolation creates a value count error. Callers attach the tag with WithTag.
func ArityViolation(phase Phase, expected, actual int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindArityViolation,
		Expected: expected,
		Actual:   actual,
		HasSizes: true,
		Detail:   fmt.Sprintf("expected %d value(s)", expected),
	}
}

// UnknownTag creates a registry miss error
func UnknownTag(phase Phase, tag uint16) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownTag,
		Tag:    tag,
		HasTag: true,
		Detail: "tag is not registered",
	}
}

// PayloadKindMismatch creates an error for a record built with the wrong payload kind
func PayloadKindMismatch(tag uint16, name, want, got string) *Error {
	return &Error{
		Phase:   PhaseEncode,
		Kind:    KindPayloadKindMismatch,
		Tag:     tag,
		TagName: name,
		HasTag:  true,
		Detail:  fmt.Sprintf("tag requires %s payload, got %s", want, got),
	}
}

// EncodingRange creates an error for a value that has no real8 representation
func EncodingRange(value float64, detail string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindEncodingRange,
		Value:  value,
		Detail: fmt.Sprintf("%g: %s", value, detail),
	}
}

// IO wraps a failure of the underlying reader or writer
func IO(phase Phase, offset int64, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Offset: offset,
		Cause:  cause,
	}
}

// WithTag returns a copy of e carrying tag context. Errors that already
// carry a tag are returned unchanged.
func WithTag(err error, tag uint16, name string) error {
	e, ok := err.(*Error)
	if !ok || e.HasTag {
		return err
	}
	c := *e
	c.Tag = tag
	c.TagName = name
	c.HasTag = true
	return &c
}

// WithOffset returns a copy of e carrying the stream offset of the record.
func WithOffset(err error, offset int64) error {
	e, ok := err.(*Error)
	if !ok || e.Offset != 0 {
		return err
	}
	c := *e
	c.Offset = offset
	return &c
}
