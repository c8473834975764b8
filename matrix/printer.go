// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Render a sequence of integer rows as text, one line per row, values in
//     base-10 joined by a separator (single space by default).
//
// Determinism:
//   - Rows and values are emitted strictly in input order.
//
// Complexity:
//   - Time O(N) for N values in total, Space O(C) for the widest row C.

package matrix

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// stdout overrides the PrintInteger destination when non-nil (tests only).
// os.Stdout is resolved at call time so redirections made after init apply.
var stdout io.Writer

// PrintInteger writes rows to standard output, one line per row, each value
// formatted in base 10 and separated by a single space.
//
// Zero rows writes nothing. An empty row writes an empty line.
//
// Example:
//
//	_ = matrix.PrintInteger([][]int{{1, 2, 3}, {4, 5, 6}})
//	// 1 2 3
//	// 4 5 6
func PrintInteger(rows [][]int) error {
	if stdout != nil {
		return FprintInteger(stdout, rows)
	}

	return FprintInteger(os.Stdout, rows)
}

// FprintInteger writes rows to w using the given options.
//
// Implementation:
//   - Stage 1: resolve options; run ValidateRectangular when requested.
//   - Stage 2: write each formatted row, terminator included, with one
//     Write call on w; rows before a failing one stay written.
//
// Errors:
//   - ErrNilWriter if w is nil.
//   - ErrNonRectangular (wrapped) under WithRectangular on ragged input.
//   - The writer's own error, wrapped with the failing row index.
func FprintInteger(w io.Writer, rows [][]int, opts ...Option) error {
	if w == nil {
		return fmt.Errorf("FprintInteger: %w", ErrNilWriter)
	}

	o := gatherOptions(opts...)
	if o.rectangular {
		if err := ValidateRectangular(rows); err != nil {
			return fmt.Errorf("FprintInteger: %w", err)
		}
	}

	for i, row := range rows {
		if _, err := io.WriteString(w, formatRow(row, o)+o.terminator); err != nil {
			return fmt.Errorf("FprintInteger: row %d: %w", i, err)
		}
	}

	return nil
}

// FormatInteger returns exactly what FprintInteger would write.
func FormatInteger(rows [][]int, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := FprintInteger(&sb, rows, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// FormatRow formats a single row without the line terminator.
// Only WithSeparator affects the result.
func FormatRow(row []int, opts ...Option) string {
	return formatRow(row, gatherOptions(opts...))
}

func formatRow(row []int, o Options) string {
	return strings.Join(lo.Map(row, func(v int, _ int) string {
		return strconv.FormatInt(int64(v), 10)
	}), o.separator)
}
