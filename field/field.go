// Package field provides prime field coefficient rings and exact
// number-theoretic transform multiplication over them.
package field

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/jonathanmweiss/go-poly/ring"
	lring "github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is the field of integers modulo a prime. It implements
// ring.EuclideanRing[uint64]; Quo is exact division by the inverse.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64

	mu           sync.RWMutex
	twiddleCache map[int]*twiddleSet
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

const maxBitUsage = 63

var _ ring.EuclideanRing[uint64] = (*PrimeField)(nil)

/*
NewPrimeField validates prime and finds a generator of its multiplicative
group.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	// ProbablyPrime is exact below 2^64.
	if !new(big.Int).SetUint64(prime).ProbablyPrime(1) {
		return nil, errNotPrime
	}

	generator, factors, err := lring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, fmt.Errorf("finding a generator mod %d: %w", prime, err)
	}

	return &PrimeField{
		prime:        prime,
		generator:    generator,
		factors:      factors,
		twiddleCache: make(map[int]*twiddleSet),
	}, nil
}

var (
	errNotPowerOfTwo = errors.New("n must be a power of 2")
	errNotDivisible  = errors.New("n must divide p-1")
	errNSTooSmall    = errors.New("n must be >= 2")
)

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

// RootOfUnity returns a primitive n-th root of unity, g^((p-1)/n) for the
// generator g. n must be a power of two dividing p-1.
func (f *PrimeField) RootOfUnity(n uint64) (uint64, error) {
	switch {
	case n < 2:
		return 0, errNSTooSmall
	case !isPowerOfTwo(n):
		return 0, errNotPowerOfTwo
	case (f.prime-1)%n != 0:
		return 0, errNotDivisible
	}

	return f.Pow(f.generator, (f.prime-1)/n), nil
}

func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

func (*PrimeField) Zero() uint64 { return 0 }
func (*PrimeField) One() uint64 { return 1 }

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

// Add reduces its inputs first; both are then below 2^63 so the sum cannot
// overflow.
func (f *PrimeField) Add(a, b uint64) uint64 {
	sum := f.Reduce(a) + f.Reduce(b)
	if sum >= f.prime {
		sum -= f.prime
	}

	return sum
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a >= b {
		return a - b
	}

	return a + (f.prime - b)
}

// Mul reduces the full 128-bit product mod p.
func (f *PrimeField) Mul(a, b uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(f.prime)
}

// Quo returns a * b^-1. Panics when b is zero.
func (f *PrimeField) Quo(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

// Equal compares a and b mod p, so unreduced values are accepted.
func (f *PrimeField) Equal(a, b uint64) bool {
	return f.Reduce(a) == f.Reduce(b)
}

// Pow returns base^exp by square-and-multiply.
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	result := uint64(1)

	for sq := f.Reduce(base); exp != 0; exp >>= 1 {
		if exp&1 == 1 {
			result = f.Mul(result, sq)
		}
		sq = f.Mul(sq, sq)
	}

	return f.Reduce(result)
}

// Inverse returns e^(p-2), the inverse of e by Fermat's little theorem.
func (f *PrimeField) Inverse(e uint64) uint64 {
	if f.Reduce(e) == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Neg(e uint64) uint64 {
	return f.Sub(0, f.Reduce(e))
}
