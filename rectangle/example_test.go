// File: rectangle/example_test.go
package rectangle_test

import (
	"fmt"

	"github.com/katalvlaran/lvshape/rectangle"
)

////////////////////////////////////////////////////////////////////////////////
// Example: lifecycle
////////////////////////////////////////////////////////////////////////////////

// ExampleRegistry_New demonstrates construction, derived values and Close.
func ExampleRegistry_New() {
	reg := rectangle.NewRegistry()

	r, err := reg.New(3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	fmt.Printf("%#v area=%d perimeter=%d live=%d\n", r, r.Area(), r.Perimeter(), reg.Live())

	reg.SetPrintSymbol("&")
	fmt.Println(r)

	_ = r.Close()
	fmt.Println("live:", reg.Live())

	// Output:
	// ###
	// ###
	// Rectangle(3, 2) area=6 perimeter=10 live=1
	// &&&
	// &&&
	// Bye rectangle...
	// live: 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: comparison & factory
////////////////////////////////////////////////////////////////////////////////

// ExampleBiggerOrEqual compares a square with a parsed rectangle.
func ExampleBiggerOrEqual() {
	reg := rectangle.NewRegistry(rectangle.WithNotifier(nil))

	sq, _ := reg.Square(2)
	r, _ := reg.Parse("Rectangle(4, 1)")
	winner, _ := rectangle.BiggerOrEqual(sq, r)
	fmt.Printf("%#v\n", winner)

	_, err := reg.Square(-1)
	fmt.Println(err)

	// Output:
	// Rectangle(2, 2)
	// width must be >= 0: rectangle: value error
}
