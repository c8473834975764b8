// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvshape/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewPrintOptions_Defaults pins the documented defaults.
func TestNewPrintOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewPrintOptions()
	require.Equal(t, matrix.DefaultSeparator, o.Separator())
	require.Equal(t, matrix.DefaultTerminator, o.Terminator())
	require.Equal(t, matrix.DefaultRectangular, o.Rectangular())
}

// TestNewPrintOptions_LastWriterWins checks ordering and nil tolerance.
func TestNewPrintOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewPrintOptions(
		matrix.WithSeparator(","),
		nil,
		matrix.WithSeparator("\t"),
		matrix.WithLineTerminator("\r\n"),
		matrix.WithRectangular(),
	)
	require.Equal(t, "\t", o.Separator())
	require.Equal(t, "\r\n", o.Terminator())
	require.True(t, o.Rectangular())
}
