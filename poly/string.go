package poly

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// String renders p deterministically: terms in canonical order
// (descending degree, then lexicographic by monomial key, constant
// last), repeated-variable runs as caret exponents, and "+ -"
// collapsed to "-".
//
//	Constant(0)            → "0"
//	Parse("r+10")          → "r+10"
//	Parse("r*r").Sub(one)  → "r^2-1"
func (p Poly) String() string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, t := range terms {
		s := termString(t)
		if i > 0 && s[0] != '-' {
			b.WriteByte('+')
		}
		b.WriteString(s)
	}
	return b.String()
}

// termString renders one term, sign included: "2r", "-r", "r^2", "3.5".
func termString(t Term) string {
	if len(t.Vars) == 0 {
		return formatCoeff(t.Coeff)
	}

	var b strings.Builder
	switch {
	case scalar.EqualWithinAbs(t.Coeff, 1, cmpTol):
		// bare monomial
	case scalar.EqualWithinAbs(t.Coeff, -1, cmpTol):
		b.WriteByte('-')
	default:
		b.WriteString(formatCoeff(t.Coeff))
	}

	// Vars is sorted, so equal names are adjacent runs.
	for i := 0; i < len(t.Vars); {
		j := i
		for j < len(t.Vars) && t.Vars[j] == t.Vars[i] {
			j++
		}
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(t.Vars[i])
		if run := j - i; run > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(run))
		}
		i = j
	}
	return b.String()
}

// formatCoeff prints a coefficient without a trailing ".0" for
// integral values.
func formatCoeff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
