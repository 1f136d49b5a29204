package gdsii

import "github.com/wippyai/gds-stream/errors"

// SizeCheck is a custom payload size predicate stored on a registry entry.
type SizeCheck func(phase errors.Phase, size int) error

// DataCheck is a decoded value predicate stored on a registry entry.
type DataCheck func(phase errors.Phase, v Value) error

// sizeMultipleOf accepts an empty payload or any multiple of n bytes.
func sizeMultipleOf(n int) SizeCheck {
	return func(phase errors.Phase, size int) error {
		if size%n == 0 {
			return nil
		}
		return errors.New(phase, errors.KindSizeMismatch).
			Sizes(size-size%n+n, size).
			Detail("size must be zero or a multiple of %d", n).
			Build()
	}
}

// sizeAtMost accepts payloads of up to n bytes.
func sizeAtMost(n int) SizeCheck {
	return func(phase errors.Phase, size int) error {
		if size <= n {
			return nil
		}
		return errors.New(phase, errors.KindSizeMismatch).
			Sizes(n, size).
			Detail("size must be at most %d", n).
			Build()
	}
}

// exactlyOne requires a single decoded value.
func exactlyOne(phase errors.Phase, v Value) error {
	if n := v.Len(); n != 1 {
		return errors.ArityViolation(phase, 1, n)
	}
	return nil
}

// validate applies the entry's constraints in order: fixed size, size
// predicate, data predicate. The first failure is returned with tag context.
func (e *Entry) validate(phase errors.Phase, size int, v Value) error {
	if e.ExpectedSize > 0 && size != e.ExpectedSize {
		return errors.New(phase, errors.KindSizeMismatch).
			Tag(uint16(e.Tag), e.Name).
			Sizes(e.ExpectedSize, size).
			Detail("fixed-size payload").
			Build()
	}
	if e.CheckSize != nil {
		if err := e.CheckSize(phase, size); err != nil {
			return errors.WithTag(err, uint16(e.Tag), e.Name)
		}
	}
	if e.CheckData != nil {
		if err := e.CheckData(phase, v); err != nil {
			return errors.WithTag(err, uint16(e.Tag), e.Name)
		}
	}
	return nil
}
