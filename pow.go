package poly

import (
	"github.com/jonathanmweiss/go-poly/ring"
)

// Pow returns p^n using exponentiation by squaring.
//
// By convention p^0 is the constant polynomial 1, including for p = 0.
func (p *Polynomial[T]) Pow(n uint) *Polynomial[T] {
	if n == 0 {
		return One(p.r)
	}

	return power(New(p.r, p.coeffs), n)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func power[T any](current *Polynomial[T], n uint) *Polynomial[T] {
	if n <= 1 {
		return current
	}

	squared := current.Multiply(current)
	if n%2 == 1 {
		return power(squared, n>>1).Multiply(current)
	}

	return power(squared, n>>1)
}

// Derivative returns the formal derivative of p.
// The derivative of a constant is the zero polynomial.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	deg := p.Degree()
	if deg == 0 {
		return Zero(p.r)
	}

	out := make([]T, deg)
	for i := range out {
		out[i] = SelfAdd(p.r, p.coeffs[i+1], uint(i+1))
	}

	// k*c can vanish in rings of positive characteristic.
	return wrap(p.r, out)
}

// SelfAdd returns v added to itself k times (k*v), using only ring addition.
// It doubles v and halves k, the additive analogue of exponentiation by
// squaring, so rings need not support multiplication by machine integers.
// SelfAdd(r, v, 0) is zero.
func SelfAdd[T any](r ring.Ring[T], v T, k uint) T {
	if k == 0 {
		return r.Zero()
	}

	if k == 1 || r.Equal(v, r.Zero()) {
		return v
	}

	doubled := r.Add(v, v)
	if k%2 == 1 {
		return r.Add(SelfAdd(r, doubled, k>>1), v)
	}

	return SelfAdd(r, doubled, k>>1)
}
