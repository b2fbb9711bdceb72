package field

import (
	"fmt"
	"testing"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/stretchr/testify/assert"
)

func randomPolynomial(f *PrimeField, seed uint64, length int) *poly.Polynomial[uint64] {
	coefficients := make([]uint64, length)
	for i := 0; i < length; i++ {
		coefficients[i] = f.Reduce(seed*uint64(i+1) + uint64(i))
	}
	coefficients[length-1] = 1

	return poly.New[uint64](f, coefficients)
}

func TestNTTForwardBackward(t *testing.T) {
	// Test the forward and backward NTT transforms.
	a := assert.New(t)
	f, err := NewPrimeField(65537)
	a.NoError(err)

	for i := 0; i < 8; i++ {
		cappingDegree := 1 << (i + 1)

		coeffs := randomPolynomial(f, 12345+uint64(i), cappingDegree).Coeffs()
		cpy := make([]uint64, len(coeffs))
		copy(cpy, coeffs)

		a.NoError(f.NttForward(coeffs))
		a.NoError(f.NttBackward(coeffs))

		a.Equal(cpy, coeffs)
	}
}

func TestNTTEvaluates(t *testing.T) {
	a := assert.New(t)
	f, err := NewPrimeField(65537)
	a.NoError(err)

	p := poly.New[uint64](f, []uint64{1, 2, 3, 4})
	values := p.Coeffs()
	a.NoError(f.NttForward(values))

	root, err := f.RootOfUnity(4)
	a.NoError(err)

	for i, v := range values {
		a.Equal(p.Evaluate(f.Pow(root, uint64(i))), v)
	}
}

func TestNTTErrors(t *testing.T) {
	a := assert.New(t)
	f, err := NewPrimeField(65537)
	a.NoError(err)

	a.ErrorIs(f.NttForward(make([]uint64, 3)), errLengthNotPowerOfTwo)
	a.ErrorIs(f.NttBackward(nil), errLengthNotPowerOfTwo)

	// 7 - 1 is not divisible by 4.
	small, err := NewPrimeField(7)
	a.NoError(err)
	a.ErrorIs(small.NttForward(make([]uint64, 4)), errNotDivisible)

	p := poly.New[uint64](small, []uint64{1, 2, 3})
	_, err = small.MulNTT(p, p)
	a.ErrorIs(err, errNotDivisible)
}

func TestMulNTT(t *testing.T) {
	a := assert.New(t)
	f, err := NewPrimeField(65537)
	a.NoError(err)

	t.Run("binomial", func(t *testing.T) {
		xMinusOne := poly.New[uint64](f, []uint64{f.Neg(1), 1})

		prod, err := f.MulNTT(xMinusOne.Pow(4), xMinusOne)
		a.NoError(err)
		a.True(prod.Equal(xMinusOne.Pow(5)))
	})

	t.Run("constantOperand", func(t *testing.T) {
		p := poly.New[uint64](f, []uint64{1, 2, 3})

		prod, err := f.MulNTT(p, poly.Constant[uint64](f, 2))
		a.NoError(err)
		a.Equal([]uint64{2, 4, 6}, prod.Coeffs())
	})

	for _, n := range []int{2, 7, 64, 300} {
		t.Run(fmt.Sprintf("matchesNaive/len=%d", n), func(t *testing.T) {
			p := randomPolynomial(f, uint64(n), n)
			q := randomPolynomial(f, uint64(n)*3, n/2+1)

			prod, err := f.MulNTT(p, q)
			a.NoError(err)
			a.True(prod.Equal(p.Multiply(q)))
		})
	}
}

func BenchmarkMulNTT(b *testing.B) {
	f, err := NewPrimeField(65537)
	if err != nil {
		b.Fatal(err)
	}

	for _, n := range []int{256, 1024, 4096} {
		p := randomPolynomial(f, uint64(n), n)
		q := randomPolynomial(f, uint64(n)*7, n)

		b.Run(fmt.Sprintf("naive/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Multiply(q)
			}
		})

		b.Run(fmt.Sprintf("ntt/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = f.MulNTT(p, q)
			}
		})
	}
}
