// Package errors provides structured error types for the GDSII stream codec.
//
// Errors are categorized by Phase (decode, encode, registry) and Kind
// (malformed header, size mismatch, arity violation, unknown tag, payload
// kind mismatch, encoding range, I/O). The Error type carries the record
// tag when it is known and the expected-vs-actual size or value count.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindSizeMismatch).
//		Tag(0x0D02, "LAYER").
//		Sizes(2, 4).
//		Detail("fixed-size payload").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownTag(errors.PhaseDecode, 0x7F00)
//	err := errors.ArityViolation(errors.PhaseDecode, 0x2202, "GENERATIONS", 1, 3)
//
// The ErrXxx sentinels match any phase with the standard errors.Is:
//
//	if errors.Is(err, gdserrors.ErrSizeMismatch) { ... }
package errors
