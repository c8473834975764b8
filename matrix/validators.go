// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks on integer rows.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     still match them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular ensures every row has the same length as the first one.
//
// Inputs: rows of integers; zero rows is a valid (empty) rectangle.
// Returns: nil or wrapped ErrNonRectangular naming the first offending row.
// Complexity: O(R) for R rows.
func ValidateRectangular(rows [][]int) error {
	if len(rows) == 0 {
		return nil
	}

	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d columns, want %d", i, len(rows[i]), width),
				ErrNonRectangular,
			)
		}
	}

	return nil
}
