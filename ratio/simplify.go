package ratio

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/varmir/resinet/poly"
)

// nearIntTol decides when a constant counts as an integer for gcd
// reduction purposes.
const nearIntTol = 1e-10

// ratioTol is the tolerance for the term-by-term constant-ratio check
// and for the univariate Euclidean remainder cutoff.
const ratioTol = 1e-9

// simplify canonicalizes num/den. The case order is load-bearing:
// each later step assumes the degeneracies before it are gone.
//
//  1. zero denominator → ∞, except 0/0 which collapses to 0
//  2. zero numerator → canonical 0 (denominator forced to 1)
//  3. constant/constant → reduce by integer gcd, positive denominator
//  4. sign-normalize by the denominator's leading coefficient, then
//     collapse an exact scalar multiple to a plain number
//  5. both sides univariate → cancel their polynomial gcd (Euclid on
//     coefficient vectors), then re-normalize
func simplify(num, den poly.Poly) Expr {
	// 1. Degenerate denominator.
	if den.IsZero() {
		if num.IsZero() {
			return Expr{num: poly.Zero(), den: poly.Constant(1)}
		}
		return Expr{num: poly.Constant(1), den: poly.Zero()}
	}

	// 2. Exact zero.
	if num.IsZero() {
		return Expr{num: poly.Zero(), den: poly.Constant(1)}
	}

	// 3. Plain number: reduce as an exact rational.
	if num.IsConstant() && den.IsConstant() {
		c, d := num.ConstantValue(), den.ConstantValue()
		g := 1.0
		rc, rd := math.Round(c), math.Round(d)
		if scalar.EqualWithinAbs(c, rc, nearIntTol) && scalar.EqualWithinAbs(d, rd, nearIntTol) {
			if gi := gcdInt(int64(math.Abs(rc)), int64(math.Abs(rd))); gi > 1 {
				g = float64(gi)
			}
		}
		c, d = c/g, d/g
		if d < 0 {
			c, d = -c, -d
		}
		return Expr{num: poly.Constant(c), den: poly.Constant(d)}
	}

	// 4. Symbolic: positive leading coefficient in the denominator,
	// then collapse num = k·den to the scalar k.
	if den.LeadingCoefficient() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if k, ok := scalarRatio(num, den); ok {
		return simplify(poly.Constant(k), poly.Constant(1))
	}

	// 5. Univariate gcd cancellation.
	if n2, d2, ok := cancelUnivariate(num, den); ok {
		return simplify(n2, d2)
	}

	return Expr{num: num, den: den}
}

// gcdInt is the classic iterative integer gcd; gcdInt(0, n) = n.
func gcdInt(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// scalarRatio reports whether num == k·den for a single constant k:
// identical monomial structure with a constant coefficient ratio.
func scalarRatio(num, den poly.Poly) (float64, bool) {
	nt, dt := num.Terms(), den.Terms()
	if len(nt) != len(dt) {
		return 0, false
	}
	var k float64
	for i := range nt {
		if !sameVars(nt[i].Vars, dt[i].Vars) {
			return 0, false
		}
		r := nt[i].Coeff / dt[i].Coeff
		if i == 0 {
			k = r
		} else if !scalar.EqualWithinAbs(r, k, ratioTol) {
			return 0, false
		}
	}
	return k, true
}

func sameVars(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// cancelUnivariate divides num and den by their polynomial gcd when
// both depend on at most one (shared) variable. Reports false when
// there is nothing to cancel.
func cancelUnivariate(num, den poly.Poly) (poly.Poly, poly.Poly, bool) {
	vars := num.Variables()
	for _, v := range den.Variables() {
		if len(vars) == 0 || vars[len(vars)-1] != v {
			vars = append(vars, v)
		}
	}
	if len(vars) != 1 {
		return poly.Poly{}, poly.Poly{}, false
	}
	name := vars[0]

	a := coeffVec(num)
	b := coeffVec(den)
	g := vecGCD(a, b)
	if len(g) <= 1 {
		return poly.Poly{}, poly.Poly{}, false // constant gcd
	}

	qa, _ := vecDivMod(a, g)
	qb, _ := vecDivMod(b, g)
	return vecToPoly(qa, name), vecToPoly(qb, name), true
}

// coeffVec flattens a univariate polynomial into ascending-power
// coefficients. Every monomial of a single-variable polynomial is a
// pure power, so the multiset size is the exponent.
func coeffVec(p poly.Poly) []float64 {
	vec := make([]float64, p.Degree()+1)
	for _, t := range p.Terms() {
		vec[len(t.Vars)] += t.Coeff
	}
	return vec
}

// vecToPoly rebuilds a polynomial from ascending-power coefficients.
// Near-zero division residue is pruned by the poly constructors.
func vecToPoly(vec []float64, name string) poly.Poly {
	out := poly.Zero()
	pow := poly.Constant(1)
	x := poly.Variable(name)
	for i, c := range vec {
		if i > 0 {
			pow = pow.Mul(x)
		}
		out = out.Add(pow.Scale(c))
	}
	return out
}

// vecTrim drops trailing coefficients within the remainder tolerance.
func vecTrim(vec []float64) []float64 {
	n := len(vec)
	for n > 0 && scalar.EqualWithinAbs(vec[n-1], 0, ratioTol) {
		n--
	}
	return vec[:n]
}

// vecMonic scales a nonempty coefficient vector to leading
// coefficient 1.
func vecMonic(vec []float64) []float64 {
	if len(vec) == 0 {
		return vec
	}
	lead := vec[len(vec)-1]
	out := make([]float64, len(vec))
	for i, c := range vec {
		out[i] = c / lead
	}
	return out
}

// vecDivMod performs univariate polynomial long division a = q·b + r
// over ascending-power coefficient vectors.
func vecDivMod(a, b []float64) (q, r []float64) {
	a, b = vecTrim(a), vecTrim(b)
	if len(b) == 0 || len(a) < len(b) {
		return nil, a
	}
	rem := make([]float64, len(a))
	copy(rem, a)
	q = make([]float64, len(a)-len(b)+1)
	lead := b[len(b)-1]
	for k := len(rem) - 1; k >= len(b)-1; k-- {
		t := rem[k] / lead
		q[k-len(b)+1] = t
		if t == 0 {
			continue
		}
		for j := 0; j < len(b); j++ {
			rem[k-len(b)+1+j] -= t * b[j]
		}
	}
	return q, vecTrim(rem)
}

// vecGCD runs the Euclidean algorithm on coefficient vectors and
// returns the monic gcd.
func vecGCD(a, b []float64) []float64 {
	a, b = vecTrim(a), vecTrim(b)
	for len(b) > 0 {
		_, r := vecDivMod(a, b)
		a, b = b, r
	}
	return vecMonic(a)
}
