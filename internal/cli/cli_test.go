package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvshape/config"
	"github.com/katalvlaran/lvshape/internal/cli"
	"github.com/katalvlaran/lvshape/matrix"
	"github.com/katalvlaran/lvshape/rectangle"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, environ []string, stdin string, args ...string) (string, error) {
	t.Helper()

	cfg, err := config.FromEnviron(environ)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(cfg)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.Execute()
	return out.String(), err
}

func TestMatrix_Args(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "", "matrix", "1,2,3", "4,5,6")
	require.NoError(t, err)
	require.Equal(t, "1 2 3\n4 5 6\n", out)
}

func TestMatrix_Stdin(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "1 2\n\n-3,4\n", "matrix", "--sep", ",")
	require.NoError(t, err)
	require.Equal(t, "1,2\n\n-3,4\n", out)
}

func TestMatrix_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, nil, "", "matrix", "1,x")
	require.ErrorContains(t, err, `"x" is not an integer`)

	_, err = run(t, nil, "", "matrix", "--strict", "1,2", "3")
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
}

func TestRect(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "", "rect", "--width", "3", "--height", "2")
	require.NoError(t, err)
	require.Equal(t, "###\n###\narea: 6\nperimeter: 10\nrepr: Rectangle(3, 2)\n"+rectangle.Farewell+"\n", out)
}

func TestRect_SymbolAndQuietFarewell(t *testing.T) {
	t.Parallel()

	env := []string{"LVSHAPE_PRINT_SYMBOL=C", "LVSHAPE_FAREWELL=false"}
	out, err := run(t, env, "", "rect", "-W", "2", "-H", "1")
	require.NoError(t, err)
	require.Equal(t, "CC\narea: 2\nperimeter: 6\nrepr: Rectangle(2, 1)\n", out)

	out, err = run(t, env, "", "rect", "-W", "2", "-H", "1", "--symbol", "*")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "**\n"))
}

func TestRect_ZeroAndNegative(t *testing.T) {
	t.Parallel()

	out, err := run(t, []string{"LVSHAPE_FAREWELL=false"}, "", "rect", "--width", "4")
	require.NoError(t, err)
	require.Equal(t, "area: 0\nperimeter: 0\nrepr: Rectangle(4, 0)\n", out)

	_, err = run(t, nil, "", "rect", "--width=-1")
	require.ErrorIs(t, err, rectangle.ErrValue)
}

func TestSquare(t *testing.T) {
	t.Parallel()

	out, err := run(t, []string{"LVSHAPE_FAREWELL=false"}, "", "square", "--size", "2")
	require.NoError(t, err)
	require.Equal(t, "##\n##\narea: 4\nperimeter: 8\nrepr: Rectangle(2, 2)\n", out)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "", "compare", "Rectangle(2, 2)", "Rectangle(4, 1)")
	require.NoError(t, err)
	require.Equal(t, "Rectangle(2, 2)\n"+strings.Repeat(rectangle.Farewell+"\n", 2), out)

	out, err = run(t, []string{"LVSHAPE_FAREWELL=false"}, "", "compare", "Rectangle(1, 1)", "Rectangle(height=3, width=3)")
	require.NoError(t, err)
	require.Equal(t, "Rectangle(3, 3)\n", out)

	_, err = run(t, nil, "", "compare", "Rectangle(1.5, 1)", "Rectangle(1, 1)")
	require.ErrorIs(t, err, rectangle.ErrType)
}
