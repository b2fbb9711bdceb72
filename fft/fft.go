// Package fft multiplies real polynomials with the fast Fourier transform.
package fft

import (
	"errors"
	"math"
)

var errLengthNotPowerOfTwo = errors.New("fft: length must be a power of two")

// Forward returns the value representation of coeffs: its evaluations at the
// n-th roots of unity e^{i2πk/n}, where n = len(coeffs) must be a power of two.
func Forward(coeffs []float64) []complex128 {
	values, err := forward(coeffs)
	if err != nil {
		panic(err)
	}

	return values
}

func forward(coeffs []float64) ([]complex128, error) {
	src := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		src[i] = complex(c, 0)
	}

	return transform(src, 1)
}

// Inverse maps a value representation back to coefficients, including the
// division by n. len(values) must be a power of two.
func Inverse(values []complex128) []complex128 {
	out, err := transform(values, -1)
	if err != nil {
		panic(err)
	}

	n := float64(len(out))
	for i, v := range out {
		out[i] = complex(real(v)/n, imag(v)/n)
	}

	return out
}

func transform(src []complex128, sign float64) ([]complex128, error) {
	n := len(src)
	if !IsPowerOfTwo(n) {
		return nil, errLengthNotPowerOfTwo
	}

	dst := make([]complex128, n)
	butterfly(dst, src, 1, sign)

	return dst, nil
}

// butterfly is a recursive radix-2 Cooley-Tukey step. It reads every stride-th
// element of src and writes len(dst) values into dst: the even-indexed half is
// transformed into dst[:n/2], the odd-indexed half into dst[n/2:], and then
// the halves are combined in place.
func butterfly(dst, src []complex128, stride int, sign float64) {
	n := len(dst)
	if n == 1 {
		dst[0] = src[0]
		return
	}

	half := n >> 1
	butterfly(dst[:half], src, stride<<1, sign)
	butterfly(dst[half:], src[stride:], stride<<1, sign)

	angle := sign * 2 * math.Pi / float64(n)
	wn := complex(math.Cos(angle), math.Sin(angle))
	w := complex(1, 0)
	for j := 0; j < half; j++ {
		even := dst[j]
		odd := w * dst[j+half]

		dst[j] = even + odd
		dst[j+half] = even - odd

		w *= wn
	}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n > 0 && (n&(n-1)) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	test := 1
	for test < n {
		test <<= 1
	}

	return test
}
