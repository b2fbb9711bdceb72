package poly

// Plus returns p + q.
func (p *Polynomial[T]) Plus(q *Polynomial[T]) *Polynomial[T] {
	r := p.r

	plen := len(p.coeffs)
	qlen := len(q.coeffs)

	out := make([]T, max(plen, qlen))
	for i := range out {
		switch {
		case i < plen && i < qlen:
			out[i] = r.Add(p.coeffs[i], q.coeffs[i])
		case i < plen:
			out[i] = p.coeffs[i]
		default:
			out[i] = q.coeffs[i]
		}
	}

	// the top terms may cancel out.
	return wrap(r, out)
}

// Neg returns -p, computed as 0 - p for every coefficient.
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	r := p.r
	zero := r.Zero()

	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = r.Sub(zero, c)
	}

	return wrap(r, out)
}

// Minus returns p - q.
func (p *Polynomial[T]) Minus(q *Polynomial[T]) *Polynomial[T] {
	return p.Plus(q.Neg())
}

// Multiply returns p * q using schoolbook convolution: O(n*m).
func (p *Polynomial[T]) Multiply(q *Polynomial[T]) *Polynomial[T] {
	r := p.r

	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = r.Zero()
	}

	// out[i+j] += p[i] * q[j]
	for i, pi := range p.coeffs {
		for j, qj := range q.coeffs {
			out[i+j] = r.Add(out[i+j], r.Mul(pi, qj))
		}
	}

	return wrap(r, out)
}

// MulScalar returns c * p.
func (p *Polynomial[T]) MulScalar(c T) *Polynomial[T] {
	r := p.r

	out := make([]T, len(p.coeffs))
	for i := range p.coeffs {
		out[i] = r.Mul(c, p.coeffs[i])
	}

	return wrap(r, out)
}

// Evaluate returns p(x).
func (p *Polynomial[T]) Evaluate(x T) T {
	r := p.r

	// horner's rule:
	result := r.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = r.Add(p.coeffs[i], r.Mul(x, result))
	}

	return result
}
