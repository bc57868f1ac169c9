package ratio

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/varmir/resinet/poly"
)

// String renders e canonically:
//
//	"0" for zero, "Infinity" for infinity, the bare numerator when the
//	denominator is the constant 1, a decimal string when fully numeric,
//	and "num/den" otherwise, parenthesizing any side holding a
//	top-level sum.
func (e Expr) String() string {
	if e.IsZero() {
		return "0"
	}
	if e.IsInfinity() {
		return "Infinity"
	}
	if e.den.IsConstant() && scalar.EqualWithinAbs(e.den.ConstantValue(), 1, 1e-12) {
		return e.num.String()
	}
	if e.IsNumeric() {
		v, _ := e.Float()
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return wrapSum(e.num) + "/" + wrapSum(e.den)
}

// Display renders e for presentation: infinity becomes the single
// glyph "∞", and unit is appended to numeric or symbolic results.
func (e Expr) Display(unit string) string {
	if e.IsInfinity() {
		return "∞"
	}
	return e.String() + unit
}

// wrapSum parenthesizes a polynomial holding a top-level sum, so
// "r+10" becomes "(r+10)" inside a rendered ratio.
func wrapSum(p poly.Poly) string {
	s := p.String()
	if len(p.Terms()) > 1 {
		return "(" + s + ")"
	}
	return s
}
