package ratio

import (
	"errors"
	"strings"

	"github.com/varmir/resinet/poly"
)

// ErrNotNumeric is returned by Float when the expression still contains
// a free symbolic variable. Silently returning a wrong number would be
// worse than stopping, so this is the one loud failure in the package.
var ErrNotNumeric = errors.New("ratio: expression is not numeric")

// Expr is an immutable, canonicalized ratio of two polynomials.
// The zero value of Expr is the exact zero expression.
type Expr struct {
	num poly.Poly
	den poly.Poly
}

// New builds the expression num/den in canonical form.
func New(num, den poly.Poly) Expr { return simplify(num, den) }

// FromPoly wraps a polynomial as the expression p/1.
func FromPoly(p poly.Poly) Expr { return simplify(p, poly.Constant(1)) }

// FromFloat wraps a plain number.
func FromFloat(v float64) Expr { return simplify(poly.Constant(v), poly.Constant(1)) }

// Zero returns the exact zero expression.
func Zero() Expr { return Expr{num: poly.Zero(), den: poly.Constant(1)} }

// Infinity returns the exact infinity expression.
func Infinity() Expr { return Expr{num: poly.Constant(1), den: poly.Zero()} }

// Parse converts a raw value string into an Expr. The literal token
// "Infinity" and the glyph "∞" parse as Infinity; everything else goes
// through poly.Parse, including its opaque-symbol fallback.
func Parse(s string) Expr {
	switch strings.TrimSpace(s) {
	case "Infinity", "∞":
		return Infinity()
	}
	return FromPoly(poly.Parse(s))
}

// Num returns the canonical numerator.
func (e Expr) Num() poly.Poly { return e.num }

// Den returns the canonical denominator.
func (e Expr) Den() poly.Poly { return e.den }

// IsZero reports whether e is exactly zero.
func (e Expr) IsZero() bool { return e.num.IsZero() }

// IsInfinity reports whether e is exactly infinite.
func (e Expr) IsInfinity() bool { return e.den.IsZero() && !e.num.IsZero() }

// IsNumeric reports whether e is a plain number, free of symbols.
// Zero is numeric; Infinity is not.
func (e Expr) IsNumeric() bool {
	if e.IsZero() {
		return true
	}
	if e.IsInfinity() {
		return false
	}
	return e.num.IsConstant() && e.den.IsConstant()
}

// Float coerces e to a number. It fails with ErrNotNumeric when e is
// infinite or still contains a free variable; callers wanting a
// printable form for those should use String or Display instead.
func (e Expr) Float() (float64, error) {
	if e.IsZero() {
		return 0, nil
	}
	if !e.IsNumeric() {
		return 0, ErrNotNumeric
	}
	return e.num.ConstantValue() / e.den.ConstantValue(), nil
}

// Equal reports value equality by cross-multiplication:
// e.num·o.den == o.num·e.den as polynomials.
func (e Expr) Equal(o Expr) bool {
	return e.num.Mul(o.den).Equal(o.num.Mul(e.den))
}

// Add returns e + o. Infinity absorbs addition: ∞ + x = ∞.
func (e Expr) Add(o Expr) Expr {
	if e.IsInfinity() || o.IsInfinity() {
		return Infinity()
	}
	return simplify(
		e.num.Mul(o.den).Add(o.num.Mul(e.den)),
		e.den.Mul(o.den),
	)
}

// Sub returns e − o. Infinity absorbs subtraction on either side.
func (e Expr) Sub(o Expr) Expr {
	if e.IsInfinity() || o.IsInfinity() {
		return Infinity()
	}
	return simplify(
		e.num.Mul(o.den).Sub(o.num.Mul(e.den)),
		e.den.Mul(o.den),
	)
}

// Mul returns e·o. The indeterminate form ∞·0 resolves to 0 by
// convention — the zero check runs first — matching the engine's
// treatment of an open branch carrying no current. This is a
// convention, not a limit argument.
func (e Expr) Mul(o Expr) Expr {
	if e.IsZero() || o.IsZero() {
		return Zero()
	}
	if e.IsInfinity() || o.IsInfinity() {
		return Infinity()
	}
	return simplify(e.num.Mul(o.num), e.den.Mul(o.den))
}

// Div returns e/o, defined as multiplication by the reciprocal.
// Dividing by zero yields Infinity; dividing by Infinity yields zero.
func (e Expr) Div(o Expr) Expr { return e.Mul(o.Reciprocal()) }

// Reciprocal swaps numerator and denominator, exchanging 0 and ∞.
func (e Expr) Reciprocal() Expr { return simplify(e.den, e.num) }
