package gauss

import (
	"errors"

	"github.com/varmir/resinet/ratio"
)

// Sentinel errors for the solver. Match with errors.Is.
var (
	// ErrSingular is returned when no nonzero pivot exists for some
	// column: the system has no unique solution.
	ErrSingular = errors.New("gauss: singular system")

	// ErrDimensionMismatch is returned when a is not n×n for n = len(b).
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")
)

// Solve returns the solution x of the n×n system a·x = b.
//
// Pivot selection per column prefers, among nonzero candidates at or
// below the diagonal, one whose value IsNumeric: numeric pivots keep
// subsequent symbolic cancellation cheap. The preference never changes
// the mathematical result. A column with no nonzero candidate, or a
// zero pivot surviving to back-substitution, yields ErrSingular.
//
// An n == 0 system is trivially consistent and returns an empty,
// non-nil solution. Complexity: O(n³) Expr operations.
func Solve(a [][]ratio.Expr, b []ratio.Expr) ([]ratio.Expr, error) {
	n := len(b)
	if len(a) != n {
		return nil, ErrDimensionMismatch
	}
	for _, row := range a {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}
	if n == 0 {
		return []ratio.Expr{}, nil
	}

	// Private augmented copy [A | b]; callers' data stays untouched.
	m := make([][]ratio.Expr, n)
	for i := 0; i < n; i++ {
		m[i] = make([]ratio.Expr, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if m[r][col].IsZero() {
				continue
			}
			if m[r][col].IsNumeric() {
				pivot = r
				break
			}
			if pivot < 0 {
				pivot = r
			}
		}
		if pivot < 0 {
			return nil, ErrSingular
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			if m[r][col].IsZero() {
				continue
			}
			factor := m[r][col].Div(m[col][col])
			for c := col; c <= n; c++ {
				m[r][c] = m[r][c].Sub(factor.Mul(m[col][c]))
			}
		}
	}

	// Back-substitution.
	x := make([]ratio.Expr, n)
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for j := i + 1; j < n; j++ {
			sum = sum.Sub(m[i][j].Mul(x[j]))
		}
		if m[i][i].IsZero() {
			return nil, ErrSingular
		}
		x[i] = sum.Div(m[i][i])
	}
	return x, nil
}
