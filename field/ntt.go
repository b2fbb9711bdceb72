package field

import (
	"errors"
	"fmt"
	"math/bits"

	poly "github.com/jonathanmweiss/go-poly"
)

var errLengthNotPowerOfTwo = errors.New("ntt: length must be a power of two")

// twiddleSet holds, for every stage of an n-point transform, the powers
// w^0..w^(m/2-1) of that stage's m-th root of unity (m = 2, 4, ..., n).
type twiddleSet struct {
	fwd  [][]uint64
	inv  [][]uint64
	nInv uint64
}

// twiddles returns the cached set for n-point transforms, building it on a miss.
func (f *PrimeField) twiddles(n int) (*twiddleSet, error) {
	f.mu.RLock()
	ts, ok := f.twiddleCache[n]
	f.mu.RUnlock()

	if ok {
		return ts, nil
	}

	ts, err := f.newTwiddleSet(n)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// keep the set of whoever stored first.
	if cached, ok := f.twiddleCache[n]; ok {
		return cached, nil
	}
	f.twiddleCache[n] = ts

	return ts, nil
}

func (f *PrimeField) newTwiddleSet(n int) (*twiddleSet, error) {
	if n == 1 {
		return &twiddleSet{nInv: 1}, nil
	}

	psi, err := f.RootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}

	ts := &twiddleSet{nInv: f.Inverse(uint64(n))}
	psiInv := f.Inverse(psi)

	for m := 2; m <= n; m <<= 1 {
		ts.fwd = append(ts.fwd, f.powers(f.Pow(psi, uint64(n/m)), m/2))
		ts.inv = append(ts.inv, f.powers(f.Pow(psiInv, uint64(n/m)), m/2))
	}

	return ts, nil
}

// powers returns w^0, w^1, ..., w^(count-1).
func (f *PrimeField) powers(w uint64, count int) []uint64 {
	row := make([]uint64, count)

	acc := uint64(1)
	for j := range row {
		row[j] = acc
		acc = f.Mul(acc, w)
	}

	return row
}

// NttForward replaces the reduced coefficients in xs with their evaluations at
// the len(xs)-th roots of unity. len(xs) must be a power of two dividing p-1.
func (f *PrimeField) NttForward(xs []uint64) error {
	ts, err := f.prepare(xs)
	if err != nil {
		return err
	}

	f.butterflies(xs, ts.fwd)

	return nil
}

// NttBackward is the inverse of NttForward, including the scaling by n^-1.
func (f *PrimeField) NttBackward(xs []uint64) error {
	ts, err := f.prepare(xs)
	if err != nil {
		return err
	}

	f.butterflies(xs, ts.inv)

	for i := range xs {
		xs[i] = f.Mul(xs[i], ts.nInv)
	}

	return nil
}

func (f *PrimeField) prepare(xs []uint64) (*twiddleSet, error) {
	n := len(xs)
	if !isPowerOfTwo(uint64(n)) {
		return nil, errLengthNotPowerOfTwo
	}

	return f.twiddles(n)
}

// butterflies runs the iterative transform: bit-reversal permutation then
// breadth-first butterflies with the precomputed per-stage twiddles.
func (f *PrimeField) butterflies(xs []uint64, stages [][]uint64) {
	bitReverseInPlace(xs)

	n := len(xs)
	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1
		ws := stages[s]
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				u := xs[k+j]
				t := f.Mul(ws[j], xs[k+j+half])
				xs[k+j] = f.Add(u, t)
				xs[k+j+half] = f.Sub(u, t)
			}
		}
	}
}

// MulNTT returns p*q through the number-theoretic transform. Unlike the
// complex transform the result is exact. It fails when the padded length
// does not divide p-1.
func (f *PrimeField) MulNTT(p, q *poly.Polynomial[uint64]) (*poly.Polynomial[uint64], error) {
	if p.Degree() == 0 || q.Degree() == 0 {
		return p.Multiply(q), nil
	}

	n := 1
	for n < p.Degree()+q.Degree()+1 {
		n <<= 1
	}

	a := f.padReduced(p, n)
	b := f.padReduced(q, n)

	if err := f.NttForward(a); err != nil {
		return nil, fmt.Errorf("transforming %d coefficients: %w", n, err)
	}

	if err := f.NttForward(b); err != nil {
		return nil, fmt.Errorf("transforming %d coefficients: %w", n, err)
	}

	for i := range a {
		a[i] = f.Mul(a[i], b[i])
	}

	if err := f.NttBackward(a); err != nil {
		return nil, fmt.Errorf("transforming %d coefficients: %w", n, err)
	}

	return poly.New[uint64](f, a), nil
}

func (f *PrimeField) padReduced(p *poly.Polynomial[uint64], n int) []uint64 {
	padded := make([]uint64, n)
	for i := 0; i < p.Len(); i++ {
		padded[i] = f.Reduce(p.Coeff(i))
	}

	return padded
}

func bitReverseInPlace(xs []uint64) {
	if len(xs) < 2 {
		return
	}

	shift := 64 - bits.TrailingZeros(uint(len(xs)))
	for i := range xs {
		if j := int(bits.Reverse64(uint64(i)) >> shift); i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
