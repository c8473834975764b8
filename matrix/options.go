// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the integer row printer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Zero options reproduce the classic output: values joined by one space,
//     one line per row, each terminated by "\n".
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is written between two values of the same row.
	DefaultSeparator = " "

	// DefaultTerminator is written after every row, including the last one.
	DefaultTerminator = "\n"

	// DefaultRectangular disables the shape check; ragged rows are printed as-is.
	DefaultRectangular = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	separator   string // DefaultSeparator
	terminator  string // DefaultTerminator
	rectangular bool   // DefaultRectangular
}

// WithSeparator sets the string written between two values of a row.
// An empty separator concatenates the digits.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithLineTerminator sets the string written after each row.
func WithLineTerminator(term string) Option {
	return func(o *Options) { o.terminator = term }
}

// WithRectangular enables ValidateRectangular before anything is written.
// On a ragged input nothing is printed and ErrNonRectangular is returned.
func WithRectangular() Option {
	return func(o *Options) { o.rectangular = true }
}

// NewPrintOptions returns the effective options for the given setters.
// Exposed for callers that want to inspect the resolved configuration.
func NewPrintOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Separator returns the resolved value separator.
func (o Options) Separator() string { return o.separator }

// Terminator returns the resolved line terminator.
func (o Options) Terminator() string { return o.terminator }

// Rectangular reports whether the shape check is enabled.
func (o Options) Rectangular() bool { return o.rectangular }

// gatherOptions applies user-provided setters on top of the documented defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		separator:   DefaultSeparator,
		terminator:  DefaultTerminator,
		rectangular: DefaultRectangular,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
