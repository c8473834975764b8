// SPDX-License-Identifier: MIT
package rectangle

import (
	"fmt"
	"log/slog"
	"os"
)

// NewRegistry returns a Registry with DefaultPrintSymbol, zero live instances,
// farewell notifications on standard output and a discard logger, then applies
// opts in order.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	r.initLocked()
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// New constructs a width × height rectangle and increments the live counter.
// Go callers pass 0, 0 for the classic defaults.
//
// Errors: ErrValue (wrapped, naming the attribute) if a dimension is negative.
func (reg *Registry) New(width, height int) (*Rectangle, error) {
	if err := checkDimension(attrWidth, width); err != nil {
		return nil, err
	}
	if err := checkDimension(attrHeight, height); err != nil {
		return nil, err
	}

	return reg.track(width, height), nil
}

// NewFromValues is New for untyped input such as decoded JSON, CLI flags or
// parsed text. Any Go integer kind is accepted; everything else, bool
// included, fails with ErrType.
func (reg *Registry) NewFromValues(width, height any) (*Rectangle, error) {
	w, err := toDimension(attrWidth, width)
	if err != nil {
		return nil, err
	}
	h, err := toDimension(attrHeight, height)
	if err != nil {
		return nil, err
	}

	return reg.track(w, h), nil
}

// Square returns a new size × size rectangle. Errors match New; the messages
// name "width", as the square's first side.
func (reg *Registry) Square(size int) (*Rectangle, error) {
	if err := checkDimension(attrWidth, size); err != nil {
		return nil, err
	}

	return reg.track(size, size), nil
}

// Live returns the number of rectangles created by reg and not yet closed.
func (reg *Registry) Live() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.initLocked()

	return reg.live
}

// PrintSymbol returns the current rendering symbol.
func (reg *Registry) PrintSymbol() string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.initLocked()

	return reg.symbol
}

// SetPrintSymbol changes the rendering symbol for every rectangle of reg,
// including those already created. v is converted to text with fmt.Sprint.
func (reg *Registry) SetPrintSymbol(v any) {
	s := symbolText(v)

	reg.mu.Lock()
	reg.initLocked()
	reg.symbol = s
	logger := reg.logger
	reg.mu.Unlock()

	logger.Debug("print symbol changed", slog.String("symbol", s))
}

// track registers a validated rectangle.
func (reg *Registry) track(width, height int) *Rectangle {
	reg.mu.Lock()
	reg.initLocked()
	reg.live++
	live := reg.live
	logger := reg.logger
	reg.mu.Unlock()

	logger.Debug("rectangle created",
		slog.Int("width", width), slog.Int("height", height), slog.Int("live", live))

	return &Rectangle{width: width, height: height, reg: reg}
}

// release unregisters a rectangle and emits the farewell.
func (reg *Registry) release(r *Rectangle) error {
	reg.mu.Lock()
	reg.initLocked()
	reg.live--
	live := reg.live
	_, err := fmt.Fprintln(reg.notifier, Farewell)
	logger := reg.logger
	reg.mu.Unlock()

	logger.Debug("rectangle closed",
		slog.Int("width", r.width), slog.Int("height", r.height), slog.Int("live", live))
	if err != nil {
		return fmt.Errorf("rectangle: farewell: %w", err)
	}

	return nil
}

// initLocked fills in the documented defaults once; reg.mu must be held
// (or reg not yet shared).
func (reg *Registry) initLocked() {
	if reg.ready {
		return
	}
	reg.ready = true
	reg.symbol = DefaultPrintSymbol
	reg.notifier = os.Stdout
	reg.logger = slog.New(slog.DiscardHandler)
}

func symbolText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
