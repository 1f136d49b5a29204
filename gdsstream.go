package gdsstream

import (
	"io"

	"github.com/wippyai/gds-stream/gdsii"
)

// Source is a byte stream records are decoded from. It is only read
// sequentially; seeking is never required.
type Source = io.Reader

// Sink is a byte stream records are encoded to, written sequentially.
type Sink = io.Writer

// ReadLibrary decodes every record of src up to and including ENDLIB. On a
// malformed stream it returns the records read before the failure together
// with the error.
func ReadLibrary(src Source) ([]gdsii.Record, error) {
	return gdsii.ReadAll(src)
}

// WriteLibrary encodes recs to dst in order.
func WriteLibrary(dst Sink, recs []gdsii.Record) error {
	return gdsii.WriteAll(dst, recs)
}
