package gdsii

import (
	"math"

	"github.com/wippyai/gds-stream/errors"
)

// GDSII real8 layout: sign(1) | exponent(7, excess 64, radix 16) | mantissa(56).
// value = (-1)^sign * mantissa/2^56 * 16^(exponent-64)
const (
	real8ExponentBias = 64
	real8MantissaBits = 56
	real8MantissaMask = uint64(1)<<real8MantissaBits - 1
	real8SignBit      = uint64(1) << 63
)

// DecodeReal8 converts an 8-byte GDSII real word to a float64.
// A zero sign/exponent byte or a zero mantissa decodes to 0.
// Mantissas wider than 53 bits are rounded to the nearest float64.
func DecodeReal8(word uint64) float64 {
	mant := word & real8MantissaMask
	if word>>real8MantissaBits == 0 || mant == 0 {
		return 0
	}
	exp := int((word >> real8MantissaBits) & 0x7F)
	v := math.Ldexp(float64(mant), 4*(exp-real8ExponentBias)-real8MantissaBits)
	if word&real8SignBit != 0 {
		return -v
	}
	return v
}

// EncodeReal8 converts a float64 to the GDSII real word. Zero maps to 0.
// The mantissa is normalized to [1/16, 1), so every finite float64 inside the
// exponent range encodes exactly. NaN, infinities and magnitudes whose biased
// exponent falls outside [1, 127] return an EncodingRange error.
func EncodeReal8(v float64) (uint64, error) {
	if v == 0 {
		return 0, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.EncodingRange(v, "not a finite number")
	}

	var sign uint64
	if v < 0 {
		sign = real8SignBit
		v = -v
	}

	// v = frac * 2^exp2 with frac in [0.5, 1); the radix-16 exponent is ceil(exp2/4).
	_, exp2 := math.Frexp(v)
	exp16 := (exp2 + 3) >> 2

	biased := exp16 + real8ExponentBias
	if biased > 0x7F {
		return 0, errors.EncodingRange(v, "magnitude exceeds 16^63")
	}
	if biased < 1 {
		return 0, errors.EncodingRange(v, "magnitude below 16^-64")
	}

	// Scaled value lies in [2^52, 2^56) and is an exact integer.
	mant := uint64(math.Ldexp(v, real8MantissaBits-4*exp16))
	return sign | uint64(biased)<<real8MantissaBits | mant, nil
}
