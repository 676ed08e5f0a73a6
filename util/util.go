package util

import (
	"errors"
	"fmt"
)

// ErrNilValue is returned by UnwrapAs when the value is nil.
var ErrNilValue = errors.New("value is unexpectedly nil")

// UnwrapAs asserts that value is a non-nil T and returns it.
// It is the checked alternative to a bare type assertion for values
// pulled out of maps or any-typed payloads (e.g. decoded token claims).
func UnwrapAs[T any](value any) (T, error) {
	var zero T
	if value == nil {
		return zero, ErrNilValue
	}
	v, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("value is %T, not %T", value, zero)
	}
	return v, nil
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
