// Package poly implements univariate polynomials over a generic coefficient ring.
package poly

import (
	"github.com/jonathanmweiss/go-poly/ring"
)

/*
Polynomial holds its coefficients ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2).

A Polynomial is immutable: every operation returns a new value and never
shares coefficient storage with its operands. Apart from NewRaw, every
constructor and operation returns a normalized polynomial, one without
leading zero coefficients. The zero polynomial is [0].
*/
type Polynomial[T any] struct {
	r      ring.Ring[T]
	coeffs []T
}

// New copies coeffs and trims leading zero coefficients.
// Panics on an empty slice.
func New[T any](r ring.Ring[T], coeffs []T) *Polynomial[T] {
	p := NewRaw(r, coeffs)
	p.coeffs = Normalize(r, p.coeffs)

	return p
}

// NewRaw copies coeffs without normalizing them. Callers are responsible for
// not passing leading zero coefficients.
func NewRaw[T any](r ring.Ring[T], coeffs []T) *Polynomial[T] {
	if len(coeffs) == 0 {
		panic("empty polynomial")
	}

	inner := make([]T, len(coeffs))
	copy(inner, coeffs)

	return &Polynomial[T]{r: r, coeffs: inner}
}

// wrap takes ownership of coeffs.
func wrap[T any](r ring.Ring[T], coeffs []T) *Polynomial[T] {
	if len(coeffs) == 0 {
		panic("empty polynomial")
	}

	return &Polynomial[T]{r: r, coeffs: Normalize(r, coeffs)}
}

// Normalize drops trailing zeros from coeffs, keeping at least one element.
// The result aliases coeffs.
func Normalize[T any](r ring.Ring[T], coeffs []T) []T {
	if len(coeffs) == 0 {
		panic("empty polynomial")
	}

	zero := r.Zero()

	n := len(coeffs)
	for n > 1 && r.Equal(coeffs[n-1], zero) {
		n--
	}

	return coeffs[:n]
}

// Zero returns the zero polynomial [0].
func Zero[T any](r ring.Ring[T]) *Polynomial[T] {
	return &Polynomial[T]{r: r, coeffs: []T{r.Zero()}}
}

// One returns the constant polynomial 1.
func One[T any](r ring.Ring[T]) *Polynomial[T] {
	return &Polynomial[T]{r: r, coeffs: []T{r.One()}}
}

// Constant returns the degree-0 polynomial c.
func Constant[T any](r ring.Ring[T], c T) *Polynomial[T] {
	return &Polynomial[T]{r: r, coeffs: []T{c}}
}

// Monomial returns c*x^n, the constant c lifted to degree n with zeros below
// it. The result is the zero polynomial when c is zero. Panics when n < 0.
func Monomial[T any](r ring.Ring[T], c T, n int) *Polynomial[T] {
	if n < 0 {
		panic("negative degree")
	}

	if r.Equal(c, r.Zero()) {
		return Zero(r)
	}

	coeffs := make([]T, n+1)
	for i := 0; i < n; i++ {
		coeffs[i] = r.Zero()
	}
	coeffs[n] = c

	return &Polynomial[T]{r: r, coeffs: coeffs}
}

// Uniform returns c + c*x + ... + c*x^n.
// The result is the zero polynomial when c is zero. Panics when n < 0.
func Uniform[T any](r ring.Ring[T], c T, n int) *Polynomial[T] {
	if n < 0 {
		panic("negative degree")
	}

	if r.Equal(c, r.Zero()) {
		return Zero(r)
	}

	coeffs := make([]T, n+1)
	for i := range coeffs {
		coeffs[i] = c
	}

	return &Polynomial[T]{r: r, coeffs: coeffs}
}

// Ring returns the coefficient ring of p.
func (p *Polynomial[T]) Ring() ring.Ring[T] {
	return p.r
}

// Degree returns len-1. Constants, including zero, have degree 0.
func (p *Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// Len returns the number of stored coefficients.
func (p *Polynomial[T]) Len() int {
	return len(p.coeffs)
}

// Coeff returns the coefficient of x^i, or zero when i is past the degree.
func (p *Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return p.r.Zero()
	}

	return p.coeffs[i]
}

func (p *Polynomial[T]) HighestCoeff() T {
	return p.coeffs[len(p.coeffs)-1]
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p *Polynomial[T]) Coeffs() []T {
	list := make([]T, len(p.coeffs))
	copy(list, p.coeffs)

	return list
}

func (p *Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 1 && p.r.Equal(p.coeffs[0], p.r.Zero())
}

func (p *Polynomial[T]) IsOne() bool {
	return len(p.coeffs) == 1 && p.r.Equal(p.coeffs[0], p.r.One())
}

// Equal reports whether p and q have the same coefficients.
// Both are compared with p's ring.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if !p.r.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}
