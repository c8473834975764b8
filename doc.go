// Package lvshape collects two small, independent text-rendering components.
//
//	matrix/     — print integer rows as space-separated lines (PrintInteger)
//	rectangle/  — validated width × height value type with symbol rendering,
//	              a live-instance Registry and explicit Close
//	config/     — LVSHAPE_* environment configuration
//	cmd/lvshape — command-line front end for both components
//
// Quick example:
//
//	reg := rectangle.NewRegistry()
//	r, _ := reg.New(3, 2)
//	defer r.Close()
//	fmt.Println(r) // ###
//	               // ###
//
//	go install github.com/katalvlaran/lvshape/cmd/lvshape@latest
package lvshape
