package poly

import (
	"errors"

	"github.com/jonathanmweiss/go-poly/ring"
)

var (
	ErrNoPoints           = errors.New("no interpolation points")
	ErrPointsSizeMismatch = errors.New("points size mismatch")
	ErrNonUniqueXs        = errors.New("non-unique x values")
)

// FromRoots computes \prod (x - r_i). With no roots it returns 1.
func FromRoots[T any](r ring.Ring[T], roots []T) *Polynomial[T] {
	coeffs := make([]T, len(roots)+1)
	coeffs[0] = r.One()

	deg := 0
	for _, root := range roots {
		coeffs[deg+1] = r.Zero()
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = r.Add(coeffs[j+1], coeffs[j])
			// new[j] = old[j] * (-r)
			coeffs[j] = r.Sub(r.Zero(), r.Mul(coeffs[j], root))
		}
		deg++
	}

	return wrap(r, coeffs)
}

// Product multiplies a slice of polynomials. The empty product is 1.
func Product[T any](r ring.Ring[T], polys []*Polynomial[T]) *Polynomial[T] {
	m := One(r)
	for _, p := range polys {
		m = m.Multiply(p)
	}

	return m
}

// Interpolate returns the polynomial of degree < len(xs) passing through
// every (xs[i], ys[i]). The result is exact only when r is a field.
//
// Following the Lagrange method (https://en.wikipedia.org/wiki/Lagrange_polynomial),
// O(n^2) in total:
//  1. m(x) = \prod (x - x_i).
//  2. q_i(x) = m(x) / (x - x_i), by synthetic division.
//  3. l_i(x) = q_i(x) / q_i(x_i).
//  4. the result is \sum y_i * l_i(x).
func Interpolate[T any](r ring.EuclideanRing[T], xs, ys []T) (*Polynomial[T], error) {
	if err := validateInterpolationPoints[T](r, xs, ys); err != nil {
		return nil, err
	}

	m := FromRoots[T](r, xs)

	sum := make([]T, len(xs))
	for i := range sum {
		sum[i] = r.Zero()
	}

	for i, x := range xs {
		qi := divByLinear[T](r, m, x)

		// \prod_{j != i} (x_i - x_j)
		s := qi.Evaluate(x)
		scale := r.Quo(ys[i], s)

		for j, c := range qi.coeffs {
			sum[j] = r.Add(sum[j], r.Mul(scale, c))
		}
	}

	return wrap[T](r, sum), nil
}

/*
divByLinear divides m by (x - root). This is quicker than the long division
since the divisor has degree 1 and, root being a root of m, there is no
remainder.
*/
func divByLinear[T any](r ring.Ring[T], m *Polynomial[T], root T) *Polynomial[T] {
	rem := m.Coeffs()
	qInner := make([]T, len(rem)-1)

	for i := len(rem) - 1; i > 0; i-- {
		qInner[i-1] = rem[i]
		rem[i-1] = r.Add(rem[i-1], r.Mul(rem[i], root))
	}

	// m has at least one root, so qInner is never empty.
	return wrap(r, qInner)
}

func validateInterpolationPoints[T any](r ring.Ring[T], xs, ys []T) error {
	if len(xs) == 0 {
		return ErrNoPoints
	}

	if len(xs) != len(ys) {
		return ErrPointsSizeMismatch
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if r.Equal(xs[i], xs[j]) {
				return ErrNonUniqueXs
			}
		}
	}

	return nil
}
