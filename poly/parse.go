package poly

import (
	"strconv"
	"strings"
)

// Parse converts an expression string into a Poly.
//
// Accepted grammar: a plain decimal number, or a sum of signed terms
// where each term is an optional decimal coefficient followed by one
// or more variable identifiers (letters, digits, underscore; not
// starting with a digit), multiplied implicitly or with '*':
//
//	"42"  "r"  "2r"  "-r"  "3.5r+5"  "2r1+r2"  "a*b"
//
// Anything that does not fit the grammar — including malformed nested
// expressions — is treated as ONE opaque single-variable symbol named
// by the trimmed input, never an error. This silent best-effort
// fallback is a deliberate policy: callers feed free-form labels as
// resistance values, and an unrecognized label must survive as a
// symbol instead of being lost. The empty string parses to zero.
func Parse(expr string) Poly {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Zero()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Constant(v)
	}

	compact := stripSpace(trimmed)
	if p, ok := parseSum(compact); ok {
		return p
	}
	// Fallback: the whole input becomes one symbol.
	return Variable(trimmed)
}

// parseSum accumulates signed terms split on top-level '+' and '-'.
func parseSum(s string) (Poly, bool) {
	acc := Zero()
	for i, n := 0, len(s); i < n; {
		sign := 1.0
		for i < n && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				sign = -sign
			}
			i++
		}
		start := i
		for i < n && s[i] != '+' && s[i] != '-' {
			i++
		}
		if start == i {
			return Poly{}, false // dangling operator
		}
		t, ok := parseTerm(s[start:i])
		if !ok {
			return Poly{}, false
		}
		acc = acc.Add(t.Scale(sign))
	}
	return acc, true
}

// parseTerm parses one unsigned product: optional decimal coefficient,
// then identifiers joined implicitly or with '*'.
func parseTerm(s string) (Poly, bool) {
	coeff := 1.0
	i := 0

	// Leading decimal coefficient, e.g. "3.5" in "3.5r".
	j := i
	for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
		j++
	}
	if j > i {
		v, err := strconv.ParseFloat(s[i:j], 64)
		if err != nil {
			return Poly{}, false
		}
		coeff = v
		i = j
	}

	var vars []string
	for i < len(s) {
		if s[i] == '*' {
			i++
			continue
		}
		if !isIdentStart(s[i]) {
			return Poly{}, false
		}
		j = i + 1
		for j < len(s) && isIdentChar(s[j]) {
			j++
		}
		vars = append(vars, s[i:j])
		i = j
	}

	if len(vars) == 0 {
		return Constant(coeff), true
	}
	return makePoly(map[string]float64{joinVars(vars): coeff}), true
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool { return isIdentStart(c) || isDigit(c) }
