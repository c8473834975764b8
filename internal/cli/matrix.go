package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvshape/matrix"
)

func newMatrixCommand(a *app) *cobra.Command {
	var (
		sep    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "matrix [ROW...]",
		Short: "Print integer rows, one line per row",
		Long: `Each ROW is a comma- or space-separated list of integers; an empty
argument is an empty row. Without arguments rows are read from stdin, one per line.`,
		Example: `  lvshape matrix 1,2,3 4,5,6
  printf '1 2\n3 4\n' | lvshape matrix --sep ,`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd); err != nil {
					return err
				}
			}

			rows, err := parseRows(lines)
			if err != nil {
				return err
			}
			a.logger.Debug("printing matrix", "rows", len(rows))

			opts := []matrix.Option{matrix.WithSeparator(sep)}
			if strict {
				opts = append(opts, matrix.WithRectangular())
			}
			return matrix.FprintInteger(cmd.OutOrStdout(), rows, opts...)
		},
	}
	cmd.Flags().StringVar(&sep, "sep", matrix.DefaultSeparator, "separator between values")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject rows of differing lengths")

	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return lines, nil
}

// parseRows converts textual rows into integers.
func parseRows(lines []string) ([][]int, error) {
	rows := make([][]int, 0, len(lines))
	for i, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: %q is not an integer", i+1, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
