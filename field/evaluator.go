package field

import (
	"errors"
	"fmt"
	"sync"

	poly "github.com/jonathanmweiss/go-poly"
)

var (
	errTooFewPoints  = errors.New("polynomial has more coefficients than evaluation points")
	errTooManyPoints = errors.New("number of evaluation points exceeds the field size")
)

// EvaluationMap evaluates polynomials over a prime field at a fixed set of n
// points. It can be a fast evaluation (NTT) or plain Horner evaluation.
type EvaluationMap interface {
	Field() *PrimeField
	// EvaluationPoints returns the n points used for evaluation.
	EvaluationPoints(n int) ([]uint64, error)
	Evaluate(p *poly.Polynomial[uint64], n int) ([]uint64, error)

	// LocatorPolynomial returns (x - x_1)(x - x_2)...(x - x_n) for the
	// evaluation points x_1, ..., x_n.
	LocatorPolynomial(n int) (*poly.Polynomial[uint64], error)
}

type pointsCache struct {
	sync.Mutex
	byCount map[int][]uint64
}

func newPointsCache() *pointsCache {
	return &pointsCache{byCount: make(map[int][]uint64)}
}

func (c *pointsCache) load(n int) []uint64 {
	c.Lock()
	defer c.Unlock()

	return c.byCount[n]
}

func (c *pointsCache) store(n int, points []uint64) []uint64 {
	c.Lock()
	defer c.Unlock()

	if cached, ok := c.byCount[n]; ok {
		return cached
	}

	c.byCount[n] = points

	return points
}

// PointEvaluator evaluates at 1, 2, ..., n with Horner's rule.
type PointEvaluator struct {
	f     *PrimeField
	cache *pointsCache
}

var (
	_ EvaluationMap = (*PointEvaluator)(nil)
	_ EvaluationMap = (*NTTEvaluator)(nil)
)

func NewPointEvaluator(f *PrimeField) *PointEvaluator {
	return &PointEvaluator{f: f, cache: newPointsCache()}
}

func (e *PointEvaluator) Field() *PrimeField {
	return e.f
}

func (e *PointEvaluator) EvaluationPoints(n int) ([]uint64, error) {
	if points := e.cache.load(n); points != nil {
		return copyPoints(points), nil
	}

	if uint64(n) >= e.f.Modulus() {
		return nil, errTooManyPoints
	}

	points := make([]uint64, n)
	for i := range points {
		points[i] = uint64(i + 1)
	}

	return copyPoints(e.cache.store(n, points)), nil
}

func (e *PointEvaluator) Evaluate(p *poly.Polynomial[uint64], n int) ([]uint64, error) {
	if p.Len() > n {
		return nil, errTooFewPoints
	}

	points, err := e.EvaluationPoints(n)
	if err != nil {
		return nil, err
	}

	values := make([]uint64, n)
	for i, x := range points {
		values[i] = p.Evaluate(x)
	}

	return values, nil
}

func (e *PointEvaluator) LocatorPolynomial(n int) (*poly.Polynomial[uint64], error) {
	points, err := e.EvaluationPoints(n)
	if err != nil {
		return nil, err
	}

	return poly.FromRoots[uint64](e.f, points), nil
}

// NTTEvaluator evaluates at the n-th roots of unity 1, w, ..., w^(n-1) with
// a single forward transform. n must be a power of two dividing p-1.
type NTTEvaluator struct {
	f     *PrimeField
	cache *pointsCache
}

func NewNTTEvaluator(f *PrimeField) *NTTEvaluator {
	return &NTTEvaluator{f: f, cache: newPointsCache()}
}

func (e *NTTEvaluator) Field() *PrimeField {
	return e.f
}

func (e *NTTEvaluator) EvaluationPoints(n int) ([]uint64, error) {
	if n < 2 {
		return nil, errNSTooSmall
	}

	if points := e.cache.load(n); points != nil {
		return copyPoints(points), nil
	}

	// the transform of p(x) = x lists the roots themselves.
	points := make([]uint64, n)
	points[1] = 1

	if err := e.f.NttForward(points); err != nil {
		return nil, fmt.Errorf("computing %d evaluation points: %w", n, err)
	}

	return copyPoints(e.cache.store(n, points)), nil
}

func (e *NTTEvaluator) Evaluate(p *poly.Polynomial[uint64], n int) ([]uint64, error) {
	if n < 2 {
		return nil, errNSTooSmall
	}

	if p.Len() > n {
		return nil, errTooFewPoints
	}

	values := e.f.padReduced(p, n)
	if err := e.f.NttForward(values); err != nil {
		return nil, err
	}

	return values, nil
}

// LocatorPolynomial is x^n - 1, which vanishes on every n-th root of unity.
func (e *NTTEvaluator) LocatorPolynomial(n int) (*poly.Polynomial[uint64], error) {
	if _, err := e.EvaluationPoints(n); err != nil {
		return nil, err
	}

	coeffs := make([]uint64, n+1)
	coeffs[0] = e.f.Neg(1)
	coeffs[n] = 1

	return poly.New[uint64](e.f, coeffs), nil
}

func copyPoints(points []uint64) []uint64 {
	cpy := make([]uint64, len(points))
	copy(cpy, points)

	return cpy
}
