package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader wraps an io.Reader with position tracking and big-endian read methods.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader creates a new Reader wrapping the given io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int64 {
	return r.pos
}

// ReadFull reads exactly len(buf) bytes. A read that ends before any byte is
// consumed returns io.EOF, a partial read returns io.ErrUnexpectedEOF.
func (r *Reader) ReadFull(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.pos += int64(n)
	return err
}

// ReadBytes reads exactly n bytes into a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	var buf [2]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadHeader reads a 4-byte record header: total length then tag. Input
// that ends inside the header returns io.ErrUnexpectedEOF.
func (r *Reader) ReadHeader() (length, tag uint16, err error) {
	if length, err = r.ReadU16(); err != nil {
		return 0, 0, err
	}
	if tag, err = r.ReadU16(); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, 0, err
	}
	return length, tag, nil
}

// ParseError represents an error during stream parsing with position information.
type ParseError struct {
	Err      error
	Stage    string
	Position int64
}

func (e *ParseError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("gdsii: %s at position %d: %v", e.Stage, e.Position, e.Err)
	}
	return fmt.Sprintf("gdsii: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(stage string, err error) error {
	return &ParseError{
		Position: r.pos,
		Stage:    stage,
		Err:      err,
	}
}
