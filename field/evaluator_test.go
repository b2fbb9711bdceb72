package field

import (
	"testing"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/stretchr/testify/assert"
)

func TestEvaluators(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(65537)
	a.NoError(err)

	evaluators := map[string]EvaluationMap{
		"points": NewPointEvaluator(f),
		"ntt":    NewNTTEvaluator(f),
	}

	for name, e := range evaluators {
		t.Run(name, func(t *testing.T) {
			a.Same(f, e.Field())

			const n = 16
			p := randomPolynomial(f, 77, 10)

			points, err := e.EvaluationPoints(n)
			a.NoError(err)
			a.Len(points, n)

			values, err := e.Evaluate(p, n)
			a.NoError(err)
			for i, x := range points {
				a.Equal(p.Evaluate(x), values[i])
			}

			// interpolating the values recovers p.
			interpolated, err := poly.Interpolate[uint64](f, points, values)
			a.NoError(err)
			a.True(p.Equal(interpolated))

			locator, err := e.LocatorPolynomial(n)
			a.NoError(err)
			a.Equal(n, locator.Degree())
			for _, x := range points {
				a.Equal(uint64(0), locator.Evaluate(x))
			}

			_, err = e.Evaluate(randomPolynomial(f, 5, n+1), n)
			a.ErrorIs(err, errTooFewPoints)
		})
	}
}

func TestEvaluationPointsCached(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(65537)
	a.NoError(err)

	e := NewNTTEvaluator(f)

	first, err := e.EvaluationPoints(8)
	a.NoError(err)

	first[0] = 42 // callers get their own copy.

	second, err := e.EvaluationPoints(8)
	a.NoError(err)
	a.Equal(uint64(1), second[0])

	root, err := f.RootOfUnity(8)
	a.NoError(err)
	a.Equal(root, second[1])
}

func TestEvaluatorErrors(t *testing.T) {
	a := assert.New(t)

	small, err := NewPrimeField(7)
	a.NoError(err)

	_, err = NewPointEvaluator(small).EvaluationPoints(7)
	a.ErrorIs(err, errTooManyPoints)

	_, err = NewNTTEvaluator(small).EvaluationPoints(4)
	a.ErrorIs(err, errNotDivisible)

	_, err = NewNTTEvaluator(small).LocatorPolynomial(4)
	a.ErrorIs(err, errNotDivisible)

	f, err := NewPrimeField(65537)
	a.NoError(err)

	ntt := NewNTTEvaluator(f)
	_, err = ntt.EvaluationPoints(1)
	a.ErrorIs(err, errNSTooSmall)

	_, err = ntt.Evaluate(poly.Constant[uint64](f, 3), 1)
	a.ErrorIs(err, errNSTooSmall)

	_, err = ntt.LocatorPolynomial(1)
	a.ErrorIs(err, errNSTooSmall)
}
