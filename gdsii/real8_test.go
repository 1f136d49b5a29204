package gdsii_test

import (
	"errors"
	"math"
	"testing"

	gdserrors "github.com/wippyai/gds-stream/errors"
	"github.com/wippyai/gds-stream/gdsii"
)

func TestDecodeReal8(t *testing.T) {
	tests := []struct {
		name string
		word uint64
		want float64
	}{
		{"one", 0x4110000000000000, 1.0},
		{"minus two", 0xC120000000000000, -2.0},
		{"zero", 0, 0},
		{"zero mantissa", 0xFF00000000000000, 0},
		{"half", 0x4080000000000000, 0.5},
		{"sixteen", 0x4210000000000000, 16.0},
		{"nanometre", 0x3944B82FA09B5A54, 1e-9},
		{"truncated micron", 0x3E4189374BC6A7EF, 0.001},
		{"unnormalized one", 0x4201000000000000, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gdsii.DecodeReal8(tt.word); got != tt.want {
				t.Errorf("DecodeReal8(0x%016X) = %g, want %g", tt.word, got, tt.want)
			}
		})
	}
}

func TestEncodeReal8(t *testing.T) {
	tests := []struct {
		v    float64
		want uint64
	}{
		{0, 0},
		{1.0, 0x4110000000000000},
		{-2.0, 0xC120000000000000},
		{0.5, 0x4080000000000000},
		{-1.5, 0xC118000000000000},
		{90.0, 0x425A000000000000},
		{0.0625, 0x4010000000000000},
		{1e-9, 0x3944B82FA09B5A54},
		{0.001, 0x3E4189374BC6A7F0},
	}

	for _, tt := range tests {
		got, err := gdsii.EncodeReal8(tt.v)
		if err != nil {
			t.Errorf("EncodeReal8(%g): %v", tt.v, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EncodeReal8(%g) = 0x%016X, want 0x%016X", tt.v, got, tt.want)
		}
	}
}

func TestReal8RoundTrip(t *testing.T) {
	vals := []float64{
		1, -1, 0.5, 3.14159, 1e-3, 1e-9, 1e70, -1e-70,
		math.MaxInt32, 1.0 / 3.0, 123456.789,
	}
	for _, v := range vals {
		w, err := gdsii.EncodeReal8(v)
		if err != nil {
			t.Errorf("EncodeReal8(%g): %v", v, err)
			continue
		}
		if got := gdsii.DecodeReal8(w); got != v {
			t.Errorf("round trip %g: got %g (word 0x%016X)", v, got, w)
		}
	}
}

func TestEncodeReal8Range(t *testing.T) {
	vals := []float64{
		math.NaN(),
		math.Inf(1),
		math.Inf(-1),
		math.Pow(16, 63),
		-math.Pow(16, 64),
		math.Pow(16, -66),
		math.SmallestNonzeroFloat64,
	}
	for _, v := range vals {
		if _, err := gdsii.EncodeReal8(v); !errors.Is(err, gdserrors.ErrEncodingRange) {
			t.Errorf("EncodeReal8(%g): expected encoding range error, got %v", v, err)
		}
	}

	if _, err := gdsii.EncodeReal8(math.Pow(16, 62)); err != nil {
		t.Errorf("16^62 should be representable: %v", err)
	}
}
