// SPDX-License-Identifier: MIT
// Package rectangle: sentinel error set.
// Every message is prefixed with "rectangle: ...". Attribute-specific failures
// wrap these sentinels (see typeErrorf / valueErrorf) so callers always match
// with errors.Is.

package rectangle

import (
	"errors"
	"fmt"
)

var (
	// ErrType indicates an argument of the wrong kind: a non-integer dimension
	// or a nil rectangle handed to BiggerOrEqual.
	ErrType = errors.New("rectangle: type error")

	// ErrValue indicates a negative (or int-overflowing) dimension.
	ErrValue = errors.New("rectangle: value error")

	// ErrSyntax indicates Parse input that is not of the form Rectangle(W, H).
	ErrSyntax = errors.New("rectangle: invalid representation")

	// ErrClosed is returned by Close on an already closed rectangle.
	ErrClosed = errors.New("rectangle: already closed")

	// ErrDetached is returned by Close on a Rectangle not obtained from a Registry.
	ErrDetached = errors.New("rectangle: not created by a registry")
)

// typeErrorf wraps ErrType with a message such as "width must be an integer".
func typeErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrType)
}

// valueErrorf wraps ErrValue with a message such as "width must be >= 0".
func valueErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValue)
}
