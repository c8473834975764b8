// Package rectangle implements a small validated value type: a rectangle with
// non-negative integer width and height.
//
// What:
//
//   - Rectangle exposes Area, Perimeter, a symbol-based text rendering (String)
//     and a canonical representation (GoString) that Parse turns back into an
//     equivalent instance.
//   - Registry owns the state shared by its rectangles: the print symbol used by
//     String and the count of live (not yet closed) instances. A rectangle may
//     override the symbol for itself with Rectangle.SetPrintSymbol.
//   - BiggerOrEqual compares two rectangles by area; Square builds width == height.
//
// Lifecycle:
//
//   - Registry.New, Registry.Square, Registry.NewFromValues and Registry.Parse
//     increment the live counter.
//   - Rectangle.Close decrements it and writes "Bye rectangle..." to the
//     registry notifier (standard output by default). Close is explicit; pair it
//     with defer at the construction site.
//
// Errors:
//
//   - ErrType:   an argument is not an integer (or not a rectangle).
//   - ErrValue:  an integer argument is negative.
//   - ErrSyntax: Parse input is not a canonical representation.
//   - ErrClosed: Close was called twice.
//   - ErrDetached: Close on a Rectangle that no Registry created.
//
// A failing call never mutates state.
package rectangle
