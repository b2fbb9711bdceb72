package poly

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
	"github.com/jonathanmweiss/go-poly/ring"
)

var (
	ErrDivisionByZero = errors.New("division by the zero polynomial")
	ErrNoRingDivision = errors.New("coefficient ring does not support division")
)

// DivideBy returns quo, rem such that p = quo*q + rem.
//
// Over rings without exact division (e.g. the integers) the leading
// coefficient quotient can be zero, or repeat a degree already solved for.
// Division stops there and whatever is left of p becomes the remainder, so rem
// may have degree >= deg(q). For example [1,2,3] / [0,0,2] over the integers
// is quo = [1], rem = [1,2,1]. The identity p = quo*q + rem still holds.
func (p *Polynomial[T]) DivideBy(q *Polynomial[T]) (quo, rem *Polynomial[T], err error) {
	divisor := New(q.r, q.coeffs)
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	er, ok := p.r.(ring.EuclideanRing[T])
	if !ok {
		return nil, nil, ErrNoRingDivision
	}

	dividend := New(p.r, p.coeffs)

	n, m := dividend.Degree(), divisor.Degree()
	if n < m {
		return Zero(p.r), dividend, nil
	}

	qInner := make([]T, n-m+1)
	for i := range qInner {
		qInner[i] = er.Zero()
	}

	d := &longDivision[T]{
		r:        er,
		divisor:  divisor,
		quotient: qInner,
		assigned: bitset.New(uint(len(qInner))),
	}

	rem = d.reduce(dividend)

	return wrap(p.r, d.quotient), rem, nil
}

type longDivision[T any] struct {
	r       ring.EuclideanRing[T]
	divisor *Polynomial[T]

	quotient []T
	// slots of quotient that received a nonzero term.
	assigned *bitset.BitSet
}

// reduce removes the leading term of dividend and recurses on what is left.
// It returns the remainder.
func (d *longDivision[T]) reduce(dividend *Polynomial[T]) *Polynomial[T] {
	if dividend.Degree() < d.divisor.Degree() {
		return dividend
	}

	termDegree := dividend.Degree() - d.divisor.Degree()
	termCoeff := d.r.Quo(dividend.HighestCoeff(), d.divisor.HighestCoeff())

	// the degree did not go down: stop and keep the dividend as the remainder.
	if d.r.Equal(termCoeff, d.r.Zero()) || d.assigned.Test(uint(termDegree)) {
		return dividend
	}

	d.quotient[termDegree] = termCoeff
	d.assigned.Set(uint(termDegree))

	return d.reduce(dividend.Minus(monomialMultPoly(termCoeff, termDegree, d.divisor)))
}

// monomialMultPoly returns c*x^deg*p.
func monomialMultPoly[T any](c T, deg int, p *Polynomial[T]) *Polynomial[T] {
	r := p.r
	prod := make([]T, len(p.coeffs)+deg)

	for i := 0; i < deg; i++ {
		prod[i] = r.Zero()
	}

	for i := range p.coeffs {
		prod[i+deg] = r.Mul(c, p.coeffs[i])
	}

	return wrap(r, prod)
}
