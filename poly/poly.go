package poly

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Eps is the pruning threshold: any term whose coefficient magnitude
// falls below Eps is dropped, at every mutation site.
const Eps = 1e-15

// cmpTol is the tolerance used when comparing coefficients of equal
// monomial keys in Equal.
const cmpTol = 1e-9

// keySep joins sorted variable names into one monomial key.
// Identifiers never contain '*', so splitting is unambiguous.
const keySep = "*"

// Poly is an immutable multivariate polynomial. The zero value of Poly
// is the zero polynomial and is ready to use.
type Poly struct {
	// terms maps a canonical monomial key to its nonzero coefficient.
	// The empty key holds the constant term.
	terms map[string]float64
}

// Term is one coefficient·monomial summand in canonical order,
// as returned by Terms.
type Term struct {
	// Vars is the sorted variable multiset of the monomial;
	// empty for the constant term.
	Vars []string

	// Coeff is the term's coefficient, never within Eps of zero.
	Coeff float64
}

// Zero returns the canonical zero polynomial (the empty mapping).
func Zero() Poly { return Poly{} }

// Constant returns the polynomial holding the single constant term v.
// Constant(0) is the zero polynomial.
func Constant(v float64) Poly {
	return makePoly(map[string]float64{"": v})
}

// Variable returns the degree-1 polynomial 1·name.
func Variable(name string) Poly {
	return makePoly(map[string]float64{name: 1})
}

// makePoly takes ownership of terms, prunes near-zero coefficients,
// and wraps the result. Every constructor and operation funnels
// through here so the pruning invariant holds at all mutation sites.
func makePoly(terms map[string]float64) Poly {
	for k, c := range terms {
		if scalar.EqualWithinAbs(c, 0, Eps) {
			delete(terms, k)
		}
	}
	if len(terms) == 0 {
		return Poly{}
	}
	return Poly{terms: terms}
}

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	out := make(map[string]float64, len(p.terms)+len(o.terms))
	for k, c := range p.terms {
		out[k] = c
	}
	for k, c := range o.terms {
		out[k] += c
	}
	return makePoly(out)
}

// Sub returns p − o.
func (p Poly) Sub(o Poly) Poly { return p.Add(o.Neg()) }

// Neg returns −p.
func (p Poly) Neg() Poly { return p.Scale(-1) }

// Scale returns k·p.
func (p Poly) Scale(k float64) Poly {
	out := make(map[string]float64, len(p.terms))
	for key, c := range p.terms {
		out[key] = c * k
	}
	return makePoly(out)
}

// Mul returns p·o. Monomial keys merge by concatenating and
// re-sorting their variable multisets.
func (p Poly) Mul(o Poly) Poly {
	out := make(map[string]float64, len(p.terms)*len(o.terms))
	for k1, c1 := range p.terms {
		for k2, c2 := range o.terms {
			out[mergeKeys(k1, k2)] += c1 * c2
		}
	}
	return makePoly(out)
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// IsConstant reports whether p holds at most a constant term.
func (p Poly) IsConstant() bool {
	if len(p.terms) == 0 {
		return true
	}
	if len(p.terms) > 1 {
		return false
	}
	_, ok := p.terms[""]
	return ok
}

// ConstantValue returns the stored constant term, 0 if none is present.
// It does not check whether p is constant; combine with IsConstant when
// that matters.
func (p Poly) ConstantValue() float64 { return p.terms[""] }

// Degree returns the size of the largest monomial's variable multiset;
// 0 for constants and for the zero polynomial.
func (p Poly) Degree() int {
	d := 0
	for k := range p.terms {
		if kd := keyDegree(k); kd > d {
			d = kd
		}
	}
	return d
}

// Variables returns the sorted set of variable names appearing in p,
// ignoring multiplicity.
func (p Poly) Variables() []string {
	seen := make(map[string]struct{})
	for k := range p.terms {
		for _, v := range splitKey(k) {
			seen[v] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for v := range seen {
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}

// Equal reports term-wise equality, comparing coefficients of equal
// monomial keys within a small tolerance.
func (p Poly) Equal(o Poly) bool {
	if len(p.terms) != len(o.terms) {
		return false
	}
	for k, c := range p.terms {
		oc, ok := o.terms[k]
		if !ok || !scalar.EqualWithinAbs(c, oc, cmpTol) {
			return false
		}
	}
	return true
}

// Terms returns the summands of p in canonical order: descending
// degree first, then lexicographically by monomial key. The constant
// term, if present, is therefore last.
func (p Poly) Terms() []Term {
	keys := make([]string, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	out := make([]Term, len(keys))
	for i, k := range keys {
		out[i] = Term{Vars: splitKey(k), Coeff: p.terms[k]}
	}
	return out
}

// LeadingCoefficient returns the coefficient of the first term under
// the canonical ordering, 0 for the zero polynomial.
func (p Poly) LeadingCoefficient() float64 {
	lead := ""
	found := false
	for k := range p.terms {
		if !found || lessKey(k, lead) {
			lead, found = k, true
		}
	}
	if !found {
		return 0
	}
	return p.terms[lead]
}

// lessKey orders monomial keys: higher degree first, then
// lexicographically. This is the one ordering contract shared by
// Terms, LeadingCoefficient, and String.
func lessKey(a, b string) bool {
	da, db := keyDegree(a), keyDegree(b)
	if da != db {
		return da > db
	}
	return a < b
}

// keyDegree returns the multiset size encoded in a monomial key.
func keyDegree(k string) int {
	if k == "" {
		return 0
	}
	return strings.Count(k, keySep) + 1
}

// splitKey decodes a monomial key into its sorted variable multiset.
func splitKey(k string) []string {
	if k == "" {
		return nil
	}
	return strings.Split(k, keySep)
}

// joinVars encodes a variable multiset as a canonical key.
// The input slice is not modified.
func joinVars(vars []string) string {
	if len(vars) == 0 {
		return ""
	}
	sorted := make([]string, len(vars))
	copy(sorted, vars)
	sort.Strings(sorted)
	return strings.Join(sorted, keySep)
}

// mergeKeys combines two monomial keys into the key of their product.
func mergeKeys(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return joinVars(append(splitKey(a), splitKey(b)...))
}
