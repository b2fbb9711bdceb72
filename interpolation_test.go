package poly

import (
	"testing"

	"github.com/jonathanmweiss/go-poly/ring"
	"github.com/stretchr/testify/assert"
)

func makeRoots(n int) []int64 {
	roots := make([]int64, n)
	for i := 0; i < n; i++ {
		roots[i] = int64(i*7 + 3)
	}
	return roots
}

func TestFromRoots(t *testing.T) {
	a := assert.New(t)

	t.Run("noRoots", func(t *testing.T) {
		a.True(FromRoots[int64](ints, nil).IsOne())
	})

	t.Run("matchesProduct", func(t *testing.T) {
		roots := makeRoots(6)

		factors := make([]*Polynomial[int64], len(roots))
		for i, r := range roots {
			factors[i] = intPoly(-r, 1)
		}

		p := FromRoots[int64](ints, roots)
		a.True(p.Equal(Product[int64](ints, factors)))
		a.Equal(len(roots), p.Degree())

		for _, r := range roots {
			a.Equal(int64(0), p.Evaluate(r))
		}
	})

	t.Run("emptyProduct", func(t *testing.T) {
		a.True(Product[int64](ints, nil).IsOne())
	})
}

func TestDivByLinear(t *testing.T) {
	a := assert.New(t)

	m1 := intPoly(5, 1)
	m2 := intPoly(3, 1)
	m := m1.Multiply(m2)

	q, r, err := m.DivideBy(m1)
	a.NoError(err)
	a.True(r.IsZero())
	a.Equal(m2.Coeffs(), q.Coeffs())

	a.Equal(q.Coeffs(), divByLinear[int64](ints, m, -5).Coeffs())
	a.Equal(m1.Coeffs(), divByLinear[int64](ints, m, -3).Coeffs())
}

func TestInterpolation(t *testing.T) {
	a := assert.New(t)

	t.Run("floats", func(t *testing.T) {
		p := floatPoly(0, 1, 2)

		xs := []float64{1, 2, 3}
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = p.Evaluate(x)
		}

		interpolated, err := Interpolate[float64](floats, xs, ys)
		a.NoError(err)
		a.Equal(p.Len(), interpolated.Len())

		for i := 0; i < p.Len(); i++ {
			a.InDelta(p.Coeff(i), interpolated.Coeff(i), 1e-9)
		}
	})

	t.Run("complex", func(t *testing.T) {
		cr := ring.Complex128{}
		p := New[complex128](cr, []complex128{1i, 2, 0, 1})

		xs := []complex128{1, -1, 1i, -1i}
		ys := make([]complex128, len(xs))
		for i, x := range xs {
			ys[i] = p.Evaluate(x)
		}

		interpolated, err := Interpolate[complex128](cr, xs, ys)
		a.NoError(err)

		for i := 0; i < p.Len(); i++ {
			a.InDelta(real(p.Coeff(i)), real(interpolated.Coeff(i)), 1e-9)
			a.InDelta(imag(p.Coeff(i)), imag(interpolated.Coeff(i)), 1e-9)
		}
	})

	t.Run("badPoints", func(t *testing.T) {
		_, err := Interpolate[float64](floats, nil, nil)
		a.ErrorIs(err, ErrNoPoints)

		_, err = Interpolate[float64](floats, []float64{1, 2}, []float64{1})
		a.ErrorIs(err, ErrPointsSizeMismatch)

		_, err = Interpolate[float64](floats, []float64{1, 2, 1}, []float64{1, 2, 3})
		a.ErrorIs(err, ErrNonUniqueXs)
	})
}
