package gdsii

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatValue renders a payload in the textual form used by Dump:
// integers and reals space separated, bit arrays as hex, text quoted.
func FormatValue(v Value) string {
	switch v.Kind {
	case PayloadNone:
		return ""
	case PayloadBitArray:
		return fmt.Sprintf("0x%04X", v.Bits)
	case PayloadInt16:
		parts := make([]string, len(v.Int16s))
		for i, n := range v.Int16s {
			parts[i] = strconv.Itoa(int(n))
		}
		return strings.Join(parts, " ")
	case PayloadInt32:
		parts := make([]string, len(v.Int32s))
		for i, n := range v.Int32s {
			parts[i] = strconv.Itoa(int(n))
		}
		return strings.Join(parts, " ")
	case PayloadReal8:
		parts := make([]string, len(v.Real8s))
		for i, f := range v.Real8s {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, " ")
	case PayloadASCII:
		return strconv.Quote(string(v.ASCII))
	case PayloadDateTime:
		return v.DateTime.String()
	default:
		return ""
	}
}

// String renders the record as "NAME value".
func (r Record) String() string {
	s := FormatValue(r.Value)
	if s == "" {
		return r.Tag.String()
	}
	return r.Tag.String() + " " + s
}

// DumpWriter receives each decoded record and the final stream status.
// Implement it to customize dump output.
type DumpWriter interface {
	WriteRecord(offset int64, rec Record)
	WriteStatus(err error)
}

// NewDumpWriter returns a DumpWriter that writes one line per record to w:
// the offset, the record name and its value.
func NewDumpWriter(w io.Writer) DumpWriter {
	return dumpWriter{w}
}

type dumpWriter struct {
	w io.Writer
}

func (w dumpWriter) WriteRecord(offset int64, rec Record) {
	fmt.Fprintf(w.w, "%08X  %-14s %s\n", offset, rec.Tag, FormatValue(rec.Value))
}

func (w dumpWriter) WriteStatus(err error) {
	if err != nil {
		fmt.Fprintf(w.w, "ERROR: %v\n", err)
	}
}

// DumpTo decodes r and reports every record to dw. The stream error, if
// any, is reported to dw and returned.
func DumpTo(dw DumpWriter, r io.Reader) error {
	return DumpDecoder(dw, NewDecoder(r))
}

// DumpDecoder reports every record remaining in d to dw, then the stream
// status.
func DumpDecoder(dw DumpWriter, d *Decoder) error {
	for {
		rec, err := d.Next()
		if err == io.EOF {
			dw.WriteStatus(nil)
			return nil
		}
		if err != nil {
			dw.WriteStatus(err)
			return err
		}
		dw.WriteRecord(d.Offset(), rec)
	}
}

// Dump returns a human-readable listing of the records in data. On a
// malformed stream the listing covers the records before the failure.
func Dump(data []byte) (string, error) {
	var buf bytes.Buffer
	err := DumpTo(NewDumpWriter(&buf), bytes.NewReader(data))
	return buf.String(), err
}
