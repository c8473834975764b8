// SPDX-License-Identifier: MIT
// Package rectangle defines the Registry and Rectangle types and the
// functional options accepted by NewRegistry.
package rectangle

import (
	"io"
	"log/slog"
	"sync"
)

// DefaultPrintSymbol is the rendering symbol of a fresh Registry.
const DefaultPrintSymbol = "#"

// Farewell is written to the registry notifier, followed by a newline, each
// time a rectangle is closed.
const Farewell = "Bye rectangle..."

// Attribute names used in error messages.
const (
	attrWidth  = "width"
	attrHeight = "height"
)

// Registry holds the state shared by every rectangle it creates.
// All methods are safe for concurrent use. The zero value is ready to use and
// behaves like NewRegistry() without options.
type Registry struct {
	mu       sync.Mutex
	ready    bool         // defaults applied
	symbol   string       // rendering symbol, already converted to text
	live     int          // constructed and not yet closed
	notifier io.Writer    // destination of Farewell
	logger   *slog.Logger // lifecycle events at debug level
}

// Rectangle is a width × height rectangle owned by a Registry.
// The zero value is not usable (Close returns ErrDetached); obtain instances
// from a Registry.
type Rectangle struct {
	width  int
	height int
	symbol *string // per-instance override of the registry symbol
	reg    *Registry
	closed bool
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithPrintSymbol sets the initial rendering symbol; v is converted to text
// with fmt.Sprint, so WithPrintSymbol(7) renders "7".
func WithPrintSymbol(v any) Option {
	return func(r *Registry) { r.symbol = symbolText(v) }
}

// WithNotifier redirects the farewell notification. A nil writer discards it.
func WithNotifier(w io.Writer) Option {
	return func(r *Registry) {
		if w == nil {
			w = io.Discard
		}
		r.notifier = w
	}
}

// WithLogger sets the logger used for lifecycle events. Nil keeps the default
// discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}
