package gdsii_test

import (
	"bytes"
	"errors"
	"testing"

	gdserrors "github.com/wippyai/gds-stream/errors"
	"github.com/wippyai/gds-stream/gdsii"
)

func TestParseBitArray(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    uint16
		wantErr bool
	}{
		{"mixed", []byte{0x35, 0x39}, 13625, false},
		{"zero", []byte{0x00, 0x00}, 0, false},
		{"all set", []byte{0xFF, 0xFF}, 0xFFFF, false},
		{"too long", []byte{0x00, 0x01, 0x02, 0x03}, 0, true},
		{"empty", nil, 0, true},
		{"one byte", []byte{0x01}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gdsii.ParseBitArray(tt.data)
			if tt.wantErr {
				if !errors.Is(err, gdserrors.ErrSizeMismatch) {
					t.Fatalf("expected size mismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestPackBitArray(t *testing.T) {
	if got := gdsii.PackBitArray(0x3539); !bytes.Equal(got, []byte{0x35, 0x39}) {
		t.Errorf("got % X", got)
	}
}

func TestParseInt16s(t *testing.T) {
	got, err := gdsii.ParseInt16s([]byte{0x35, 0x39, 0xFF, 0xFF, 0x00, 0x00})
	if err != nil {
		t.Fatalf("ParseInt16s: %v", err)
	}
	want := []int16{13625, -1, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := gdsii.ParseInt16s([]byte{0x01, 0x02, 0x03}); !errors.Is(err, gdserrors.ErrSizeMismatch) {
		t.Errorf("odd length: expected size mismatch, got %v", err)
	}
	if _, err := gdsii.ParseInt16s(nil); !errors.Is(err, gdserrors.ErrSizeMismatch) {
		t.Errorf("empty: expected size mismatch, got %v", err)
	}
}

func TestParseInt32s(t *testing.T) {
	got, err := gdsii.ParseInt32s([]byte{0x00, 0x00, 0x03, 0xE8, 0xFF, 0xFF, 0xFC, 0x18})
	if err != nil {
		t.Fatalf("ParseInt32s: %v", err)
	}
	if len(got) != 2 || got[0] != 1000 || got[1] != -1000 {
		t.Errorf("got %v, want [1000 -1000]", got)
	}

	for _, n := range []int{0, 2, 6} {
		if _, err := gdsii.ParseInt32s(make([]byte, n)); !errors.Is(err, gdserrors.ErrSizeMismatch) {
			t.Errorf("length %d: expected size mismatch, got %v", n, err)
		}
	}
}

func TestPackInt32s(t *testing.T) {
	vals := []int32{0, -1, 2147483647, -2147483648}
	data := gdsii.PackInt32s(vals)
	if len(data) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(data))
	}
	got, err := gdsii.ParseInt32s(data)
	if err != nil {
		t.Fatalf("ParseInt32s: %v", err)
	}
	for i := range vals {
		if got[i] != vals[i] {
			t.Errorf("value %d: got %d, want %d", i, got[i], vals[i])
		}
	}
}

func TestParseReal8s(t *testing.T) {
	data := []byte{
		0x41, 0x10, 0, 0, 0, 0, 0, 0,
		0xC1, 0x20, 0, 0, 0, 0, 0, 0,
	}
	got, err := gdsii.ParseReal8s(data)
	if err != nil {
		t.Fatalf("ParseReal8s: %v", err)
	}
	if len(got) != 2 || got[0] != 1.0 || got[1] != -2.0 {
		t.Errorf("got %v, want [1 -2]", got)
	}

	if _, err := gdsii.ParseReal8s(data[:12]); !errors.Is(err, gdserrors.ErrSizeMismatch) {
		t.Errorf("expected size mismatch, got %v", err)
	}
}

func TestPackReal8s(t *testing.T) {
	data, err := gdsii.PackReal8s([]float64{1.0, -2.0})
	if err != nil {
		t.Fatalf("PackReal8s: %v", err)
	}
	want := []byte{
		0x41, 0x10, 0, 0, 0, 0, 0, 0,
		0xC1, 0x20, 0, 0, 0, 0, 0, 0,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("got % X, want % X", data, want)
	}
}

func TestParseASCII(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"padded", []byte("12345\x00"), "12345"},
		{"padded name", []byte("TOP\x00"), "TOP"},
		{"even", []byte("TOPS"), "TOPS"},
		{"only one pad stripped", []byte("AB\x00\x00"), "AB\x00"},
		{"single nul", []byte{0x00}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gdsii.ParseASCII(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := gdsii.ParseASCII(nil); !errors.Is(err, gdserrors.ErrSizeMismatch) {
		t.Errorf("empty: expected size mismatch, got %v", err)
	}
}

func TestParseASCIIDoesNotAlias(t *testing.T) {
	data := []byte("CELL")
	got, err := gdsii.ParseASCII(data)
	if err != nil {
		t.Fatalf("ParseASCII: %v", err)
	}
	data[0] = 'X'
	if string(got) != "CELL" {
		t.Errorf("result aliases input: %q", got)
	}
}

func TestPackASCII(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"321", []byte("321\x00")},
		{"4321", []byte("4321")},
		{"", []byte{}},
	}

	for _, tt := range tests {
		got := gdsii.PackASCII([]byte(tt.in))
		if !bytes.Equal(got, tt.want) {
			t.Errorf("PackASCII(%q) = % X, want % X", tt.in, got, tt.want)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	data := gdsii.PackInt16s([]int16{2024, 3, 15, 10, 30, 45})
	dt, err := gdsii.ParseDateTime(data)
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := gdsii.DateTime{Year: 2024, Month: 3, Day: 15, Hour: 10, Minute: 30, Second: 45}
	if dt != want {
		t.Errorf("got %+v, want %+v", dt, want)
	}
	if !bytes.Equal(gdsii.PackDateTime(dt), data) {
		t.Error("PackDateTime does not reproduce the input")
	}

	if _, err := gdsii.ParseDateTime(data[:10]); !errors.Is(err, gdserrors.ErrSizeMismatch) {
		t.Errorf("expected size mismatch, got %v", err)
	}
}

func TestParseDateTimeHighYear(t *testing.T) {
	data := []byte{0x80, 0x00, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0}
	dt, err := gdsii.ParseDateTime(data)
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	if dt.Year != 32768 {
		t.Errorf("year: got %d, want 32768", dt.Year)
	}
	if s := dt.String(); s != "32768-01-01 00:00:00" {
		t.Errorf("String: got %q", s)
	}
	if !bytes.Equal(gdsii.PackDateTime(dt), data) {
		t.Error("PackDateTime does not reproduce the input")
	}
}
