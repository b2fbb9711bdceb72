package fft

import (
	"math"

	poly "github.com/jonathanmweiss/go-poly"
	"golang.org/x/sync/errgroup"
)

/*
Mul returns p*q computed through the value representation in O(n log n).

The transform leaves floating point noise behind (a true zero often comes
back as ~1e-13), so every coefficient of the product is truncated toward zero
to precision decimal places. Choose the precision the application needs.
Panics when precision is outside [0, 15].

Constant operands are multiplied directly.
*/
func Mul(p, q *poly.Polynomial[float64], precision int) *poly.Polynomial[float64] {
	mustValidPrecision(precision)

	if p.Degree() == 0 || q.Degree() == 0 {
		return p.Multiply(q)
	}

	n := targetLen(p, q)

	return pointwise(p, Forward(pad(p, n)), Forward(pad(q, n)), precision)
}

// MulConcurrent is Mul with the two forward transforms running concurrently.
// Its result is identical to Mul's.
func MulConcurrent(p, q *poly.Polynomial[float64], precision int) *poly.Polynomial[float64] {
	mustValidPrecision(precision)

	if p.Degree() == 0 || q.Degree() == 0 {
		return p.Multiply(q)
	}

	n := targetLen(p, q)

	var fp, fq []complex128

	// each task owns its padded input and its output.
	var g errgroup.Group
	g.Go(func() (err error) {
		fp, err = forward(pad(p, n))
		return err
	})
	g.Go(func() (err error) {
		fq, err = forward(pad(q, n))
		return err
	})

	if err := g.Wait(); err != nil {
		panic(err)
	}

	return pointwise(p, fp, fq, precision)
}

// Truncate cuts x to precision decimal places, rounding toward zero.
// Panics when precision is outside [0, 15].
func Truncate(x float64, precision int) float64 {
	mustValidPrecision(precision)

	factor := math.Pow(10, float64(precision))

	return math.Trunc(x*factor) / factor
}

// targetLen is the smallest power of two that holds p*q without wraparound.
func targetLen(p, q *poly.Polynomial[float64]) int {
	return NextPowerOfTwo(p.Degree() + q.Degree() + 1)
}

func pad(p *poly.Polynomial[float64], n int) []float64 {
	padded := make([]float64, n)
	for i := 0; i < p.Len(); i++ {
		padded[i] = p.Coeff(i)
	}

	return padded
}

// pointwise multiplies two value representations, maps the product back to
// coefficients and truncates them.
func pointwise(p *poly.Polynomial[float64], fp, fq []complex128, precision int) *poly.Polynomial[float64] {
	prod := make([]complex128, len(fp))
	for i := range fp {
		prod[i] = fp[i] * fq[i]
	}

	values := Inverse(prod)

	coeffs := make([]float64, len(values))
	for i, v := range values {
		coeffs[i] = Truncate(real(v), precision)
	}

	return poly.New(p.Ring(), coeffs)
}

// mustValidPrecision panics for precisions Option validation would reject:
// 10^precision must stay a finite, exact float64 scale.
func mustValidPrecision(precision int) {
	if err := validatePrecision(precision); err != nil {
		panic(err)
	}
}
