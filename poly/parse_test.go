package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varmir/resinet/poly"
)

// TestParseNumbers covers plain decimal inputs.
func TestParseNumbers(t *testing.T) {
	cases := map[string]float64{
		"0":     0,
		"42":    42,
		"-3.5":  -3.5,
		"2e-3":  0.002,
		" 7 ":   7,
		"0.125": 0.125,
	}
	for in, want := range cases {
		p := poly.Parse(in)
		assert.True(t, p.IsConstant(), "Parse(%q) should be constant", in)
		assert.InDelta(t, want, p.ConstantValue(), 1e-12, "Parse(%q)", in)
	}
}

// TestParseTerms covers the coefficient·variable grammar.
func TestParseTerms(t *testing.T) {
	cases := map[string]string{
		"r":       "r",
		"2r":      "2r",
		"-r":      "-r",
		"3.5r+5":  "3.5r+5",
		"2r1+r2":  "2r1+r2",
		"r+r":     "2r",
		"2*r":     "2r",
		"a*b":     "a*b",
		"r-r":     "0",
		"-2r+r":   "-r",
		"_x1+0.5": "_x1+0.5",
	}
	for in, want := range cases {
		assert.Equal(t, want, poly.Parse(in).String(), "Parse(%q)", in)
	}
}

// TestParseFallback verifies the best-effort policy: anything outside
// the grammar becomes one opaque single-variable symbol.
func TestParseFallback(t *testing.T) {
	for _, in := range []string{
		"r(1+2)", // parentheses are not part of the grammar
		"10Ω",    // unit glyph
		"a+!b",   // stray operator
		"1/r",    // division is not polynomial syntax
		"2.5.3r", // malformed coefficient
		"x?",     // free text
	} {
		p := poly.Parse(in)
		vars := p.Variables()
		if assert.Len(t, vars, 1, "Parse(%q) should fall back to one symbol", in) {
			assert.Equal(t, in, vars[0], "the symbol is the whole trimmed input")
		}
	}
}

// TestParseEmpty pins empty and blank inputs to zero.
func TestParseEmpty(t *testing.T) {
	assert.True(t, poly.Parse("").IsZero())
	assert.True(t, poly.Parse("   ").IsZero())
}

// TestParseDanglingOperator ensures trailing operators trigger the
// fallback instead of a partial parse.
func TestParseDanglingOperator(t *testing.T) {
	p := poly.Parse("r+")
	assert.Equal(t, []string{"r+"}, p.Variables())
}

// TestStringCollapsesPlusMinus pins the "+ -" → "-" rendering rule.
func TestStringCollapsesPlusMinus(t *testing.T) {
	p := poly.Parse("r").Sub(poly.Constant(10))
	assert.Equal(t, "r-10", p.String())

	q := poly.Parse("2a").Sub(poly.Parse("3b"))
	assert.Equal(t, "2a-3b", q.String())
}
