// Package matrix prints rectangular (or ragged) grids of integers as text.
//
// The matrix package provides:
//
//   - PrintInteger: one line per row on standard output, values in base 10
//     separated by a single space.
//   - FprintInteger / FormatInteger: the same rendering to any io.Writer or
//     to a string, tunable through functional options.
//   - ValidateRectangular: an optional shape check (WithRectangular).
//
// Input is never mutated and nothing is retained after a call returns.
//
// Errors:
//
//   - ErrNilWriter: a nil io.Writer was supplied.
//   - ErrNonRectangular: rows differ in length while WithRectangular is set.
//
// See the examples in this package for usage patterns.
package matrix
