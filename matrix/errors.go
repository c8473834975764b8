// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every function returns these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests match them via errors.Is.
// Nothing in this package panics on user-supplied input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrNilWriter is returned when a nil io.Writer is passed to a printer.
	ErrNilWriter = errors.New("matrix: nil writer")

	// ErrNonRectangular signals that rows of differing lengths were supplied
	// while the rectangular shape check was enabled.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
)
