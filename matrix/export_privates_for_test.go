// SPDX-License-Identifier: MIT

package matrix

import "io"

// SwapStdout replaces the PrintInteger destination and returns a restore func.
// Test-only hook; the file name keeps it out of the public documentation.
func SwapStdout(w io.Writer) (restore func()) {
	prev := stdout
	stdout = w

	return func() { stdout = prev }
}
