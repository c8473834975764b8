package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvshape/rectangle"
)

func newRectCommand(a *app) *cobra.Command {
	var (
		width, height int
		symbol        string
	)

	cmd := &cobra.Command{
		Use:     "rect",
		Short:   "Draw a rectangle and report its measures",
		Example: `  lvshape rect --width 3 --height 2 --symbol '*'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Flags().Changed("symbol") {
				a.reg.SetPrintSymbol(symbol)
			}
			r, err := a.reg.New(width, height)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, r.Close()) }()

			return describe(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "W", 0, "rectangle width (>= 0)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "rectangle height (>= 0)")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "rendering symbol (overrides LVSHAPE_PRINT_SYMBOL)")

	return cmd
}

func newSquareCommand(a *app) *cobra.Command {
	var (
		size   int
		symbol string
	)

	cmd := &cobra.Command{
		Use:   "square",
		Short: "Draw a square and report its measures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Flags().Changed("symbol") {
				a.reg.SetPrintSymbol(symbol)
			}
			r, err := a.reg.Square(size)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, r.Close()) }()

			return describe(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "side length (>= 0)")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "rendering symbol (overrides LVSHAPE_PRINT_SYMBOL)")

	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "compare REPR REPR",
		Short:   "Print the representation of the bigger (or first equal) rectangle",
		Example: `  lvshape compare 'Rectangle(2, 2)' 'Rectangle(4, 1)'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			first, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, first.Close()) }()

			second, err := a.reg.Parse(args[1])
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, second.Close()) }()

			winner, err := rectangle.BiggerOrEqual(first, second)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", winner)
			return err
		},
	}
}

// describe writes the rendering (when non-empty) followed by the measures.
func describe(w io.Writer, r *rectangle.Rectangle) error {
	if s := r.String(); s != "" {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "area: %d\nperimeter: %d\nrepr: %#v\n", r.Area(), r.Perimeter(), r)

	return err
}
