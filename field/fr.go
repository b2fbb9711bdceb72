package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	frfft "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/ring"
)

// Fr is the scalar field of BLS12-381.
type Fr struct{}

var _ ring.EuclideanRing[fr.Element] = Fr{}

func (Fr) Zero() fr.Element {
	var z fr.Element
	return z
}

func (Fr) One() fr.Element {
	return fr.One()
}

func (Fr) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)

	return z
}

func (Fr) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)

	return z
}

func (Fr) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)

	return z
}

// Quo returns a * b^-1. Division by zero yields zero.
func (Fr) Quo(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Div(&a, &b)

	return z
}

func (Fr) Equal(a, b fr.Element) bool {
	return a.Equal(&b)
}

// FrFromUint64s builds Fr coefficients from small integers.
func FrFromUint64s(vals ...uint64) []fr.Element {
	out := make([]fr.Element, len(vals))
	for i, v := range vals {
		out[i].SetUint64(v)
	}

	return out
}

// MulFr returns p*q using a BLS12-381 scalar field FFT domain. The forward
// transforms leave their output in bit-reversed order, which the inverse
// transform takes back to natural order.
func MulFr(p, q *poly.Polynomial[fr.Element]) *poly.Polynomial[fr.Element] {
	if p.Degree() == 0 || q.Degree() == 0 {
		return p.Multiply(q)
	}

	n := uint64(1)
	for n < uint64(p.Degree()+q.Degree()+1) {
		n <<= 1
	}

	domain := frfft.NewDomain(n)

	a := padFr(p, n)
	b := padFr(q, n)

	domain.FFT(a, frfft.DIF)
	domain.FFT(b, frfft.DIF)

	for i := range a {
		a[i].Mul(&a[i], &b[i])
	}

	domain.FFTInverse(a, frfft.DIT)

	return poly.New[fr.Element](Fr{}, a)
}

func padFr(p *poly.Polynomial[fr.Element], n uint64) []fr.Element {
	padded := make([]fr.Element, n)
	for i := 0; i < p.Len(); i++ {
		padded[i] = p.Coeff(i)
	}

	return padded
}
