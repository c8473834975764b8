// SPDX-License-Identifier: MIT
package rectangle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	callPattern    = regexp.MustCompile(`^\s*Rectangle\s*\((.*)\)\s*$`)
	digitsPattern  = regexp.MustCompile(`^[+-]?[0-9][0-9_]*$`)
	keywordPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*)$`)
)

// intPattern accepts decimal without leading zeros and 0x/0o/0b literals,
// with single underscores between digits.
var intPattern = regexp.MustCompile(`^[+-]?(` +
	`[1-9](_?[0-9])*|0(_?0)*|` +
	`0[xX](_?[0-9a-fA-F])+|0[oO](_?[0-7])+|0[bB](_?[01])+)$`)

// Parse re-interprets a canonical representation such as "Rectangle(3, 2)" as
// a constructor call on reg and returns the new rectangle.
//
// Accepted forms mirror the constructor: zero, one or two positional
// arguments (missing ones default to 0), keyword arguments width= and
// height=, and a trailing comma. Integer literals follow the usual
// source-code grammar: decimal without leading zeros, 0x/0o/0b prefixes and
// single underscores between digits ("1_000", "0x10").
//
// Errors:
//   - ErrSyntax: not a call of Rectangle, unknown keyword, duplicate or
//     surplus argument, an argument that is not a literal, or a malformed
//     integer such as "007" or "1__0".
//   - ErrType:   a literal that is not an integer (float, string, bool, None).
//   - ErrValue:  a negative integer.
func (reg *Registry) Parse(s string) (*Rectangle, error) {
	m := callPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	var args []string
	if body := strings.TrimSpace(m[1]); body != "" {
		args = lo.Map(strings.Split(body, ","), func(a string, _ int) string {
			return strings.TrimSpace(a)
		})
		if len(args) > 1 && args[len(args)-1] == "" {
			args = args[:len(args)-1] // trailing comma
		}
		if lo.Contains(args, "") {
			return nil, fmt.Errorf("%q: empty argument: %w", s, ErrSyntax)
		}
	}

	dims := map[string]int{attrWidth: 0, attrHeight: 0}
	seen := map[string]bool{}
	positional := []string{attrWidth, attrHeight}
	keywords := false
	for i, arg := range args {
		name, lit := "", arg
		if km := keywordPattern.FindStringSubmatch(arg); km != nil {
			name, lit = km[1], strings.TrimSpace(km[2])
			if !lo.Contains(positional, name) {
				return nil, fmt.Errorf("%q: unexpected keyword %q: %w", s, name, ErrSyntax)
			}
			keywords = true
		} else {
			if keywords || i >= len(positional) {
				return nil, fmt.Errorf("%q: unexpected positional argument %q: %w", s, arg, ErrSyntax)
			}
			name = positional[i]
		}
		if seen[name] {
			return nil, fmt.Errorf("%q: %s given twice: %w", s, name, ErrSyntax)
		}
		seen[name] = true

		n, err := parseLiteral(name, lit)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		dims[name] = n
	}

	return reg.New(dims[attrWidth], dims[attrHeight])
}

// parseLiteral classifies a single argument literal.
func parseLiteral(name, lit string) (int, error) {
	if intPattern.MatchString(lit) {
		n, err := strconv.ParseInt(lit, 0, 0)
		if err != nil {
			return 0, valueErrorf("%s out of range", name)
		}
		if err := checkDimension(name, int(n)); err != nil {
			return 0, err
		}
		return int(n), nil
	}

	if digitsPattern.MatchString(lit) {
		return 0, fmt.Errorf("%s: malformed integer %q: %w", name, lit, ErrSyntax)
	}
	if isNonIntegerLiteral(lit) {
		return 0, typeErrorf("%s must be an integer", name)
	}

	return 0, fmt.Errorf("%s: bad literal %q: %w", name, lit, ErrSyntax)
}

func isNonIntegerLiteral(lit string) bool {
	switch lit {
	case "True", "False", "None", "true", "false", "nil":
		return true
	}
	if _, err := strconv.ParseFloat(lit, 64); err == nil {
		return true
	}
	if n := len(lit); n >= 2 {
		q := lit[0]
		if (q == '"' || q == '\'') && lit[n-1] == q {
			return true
		}
	}

	return false
}
