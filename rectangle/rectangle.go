// SPDX-License-Identifier: MIT
package rectangle

import (
	"fmt"
	"strings"
)

// Width returns the stored width.
func (r *Rectangle) Width() int { return r.width }

// Height returns the stored height.
func (r *Rectangle) Height() int { return r.height }

// SetWidth validates and stores a new width. On error the width is unchanged.
func (r *Rectangle) SetWidth(width int) error {
	if err := checkDimension(attrWidth, width); err != nil {
		return err
	}
	r.width = width

	return nil
}

// SetHeight validates and stores a new height. On error the height is unchanged.
func (r *Rectangle) SetHeight(height int) error {
	if err := checkDimension(attrHeight, height); err != nil {
		return err
	}
	r.height = height

	return nil
}

// Area returns width × height.
func (r *Rectangle) Area() int {
	return r.width * r.height
}

// Perimeter returns 2 × (width + height), or 0 when either side is 0.
func (r *Rectangle) Perimeter() int {
	if r.width == 0 || r.height == 0 {
		return 0
	}

	return 2 * (r.width + r.height)
}

// PrintSymbol returns the symbol String draws with: the instance override
// when one is set, otherwise the registry's current symbol.
func (r *Rectangle) PrintSymbol() string {
	if r.symbol != nil {
		return *r.symbol
	}
	if r.reg == nil {
		return DefaultPrintSymbol
	}

	return r.reg.PrintSymbol()
}

// SetPrintSymbol overrides the rendering symbol for this rectangle only.
// v is converted to text with fmt.Sprint. Other rectangles of the registry
// keep following Registry.SetPrintSymbol.
func (r *Rectangle) SetPrintSymbol(v any) {
	s := symbolText(v)
	r.symbol = &s
}

// ClearPrintSymbol drops the instance override; String follows the registry
// symbol again.
func (r *Rectangle) ClearPrintSymbol() { r.symbol = nil }

// String renders the rectangle as height lines of PrintSymbol repeated width
// times, joined by "\n" with no trailing newline. A rectangle with a zero side
// renders as "".
//
// The symbol is read at call time: after Registry.SetPrintSymbol the same
// rectangle renders differently, unless it carries its own override.
func (r *Rectangle) String() string {
	if r.width == 0 || r.height == 0 {
		return ""
	}

	line := strings.Repeat(r.PrintSymbol(), r.width)
	lines := make([]string, r.height)
	for i := range lines {
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

// GoString returns the canonical representation "Rectangle(W, H)", which
// Registry.Parse turns back into an equivalent rectangle.
func (r *Rectangle) GoString() string {
	return fmt.Sprintf("Rectangle(%d, %d)", r.width, r.height)
}

// Close ends the rectangle's lifetime: the registry's live counter is
// decremented and Farewell is written to its notifier. A second call returns
// ErrClosed and has no effect.
//
// A notifier write failure is returned, but the rectangle is closed anyway.
func (r *Rectangle) Close() error {
	if r.reg == nil {
		return ErrDetached
	}
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	return r.reg.release(r)
}

// Closed reports whether Close has been called.
func (r *Rectangle) Closed() bool { return r.closed }

// BiggerOrEqual returns the rectangle with the greater area; ties return a.
// A nil argument fails with ErrType naming its position.
func BiggerOrEqual(a, b *Rectangle) (*Rectangle, error) {
	if a == nil {
		return nil, typeErrorf("rect_1 must be an instance of Rectangle")
	}
	if b == nil {
		return nil, typeErrorf("rect_2 must be an instance of Rectangle")
	}

	if a.Area() >= b.Area() {
		return a, nil
	}

	return b, nil
}
