// SPDX-License-Identifier: MIT
package rectangle

import "math"

// checkDimension rejects negative values for the named attribute.
func checkDimension(name string, v int) error {
	if v < 0 {
		return valueErrorf("%s must be >= 0", name)
	}

	return nil
}

// toDimension converts an untyped value to a validated dimension.
// Integer kinds of every width are accepted; unsigned values above math.MaxInt
// cannot be stored and fail with ErrValue.
func toDimension(name string, v any) (int, error) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int8:
		n = int(x)
	case int16:
		n = int(x)
	case int32:
		n = int(x)
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, valueErrorf("%s out of range", name)
		}
		n = int(x)
	case uint:
		if uint64(x) > math.MaxInt {
			return 0, valueErrorf("%s out of range", name)
		}
		n = int(x)
	case uint8:
		n = int(x)
	case uint16:
		n = int(x)
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, valueErrorf("%s out of range", name)
		}
		n = int(x)
	case uint64:
		if x > math.MaxInt {
			return 0, valueErrorf("%s out of range", name)
		}
		n = int(x)
	default:
		return 0, typeErrorf("%s must be an integer", name)
	}

	if err := checkDimension(name, n); err != nil {
		return 0, err
	}

	return n, nil
}
