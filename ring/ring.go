// Package ring defines the coefficient contract polynomials are built over.
package ring

// Ring is the minimal set of operations a coefficient type must support.
// Implementations are expected to be stateless or safe for concurrent use.
type Ring[T any] interface {
	Zero() T
	One() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	Equal(a, b T) bool
}

// EuclideanRing is a Ring with a native division operator.
// Quo need not be exact: over the integers it truncates.
type EuclideanRing[T any] interface {
	Ring[T]
	Quo(a, b T) T
}

// Float64 is the ring of 64-bit floats.
type Float64 struct{}

func (Float64) Zero() float64 { return 0 }
func (Float64) One() float64 { return 1 }
func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Quo(a, b float64) float64 { return a / b }
func (Float64) Equal(a, b float64) bool { return a == b }

// Int64 is the ring of 64-bit integers. Quo truncates toward zero.
type Int64 struct{}

func (Int64) Zero() int64 { return 0 }
func (Int64) One() int64 { return 1 }
func (Int64) Add(a, b int64) int64 { return a + b }
func (Int64) Sub(a, b int64) int64 { return a - b }
func (Int64) Mul(a, b int64) int64 { return a * b }
func (Int64) Quo(a, b int64) int64 { return a / b }
func (Int64) Equal(a, b int64) bool { return a == b }

// Complex128 is the field of 128-bit complex numbers.
type Complex128 struct{}

func (Complex128) Zero() complex128 { return 0 }
func (Complex128) One() complex128 { return 1 }
func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Sub(a, b complex128) complex128 { return a - b }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }
func (Complex128) Quo(a, b complex128) complex128 { return a / b }
func (Complex128) Equal(a, b complex128) bool { return a == b }

var (
	_ EuclideanRing[float64]    = Float64{}
	_ EuclideanRing[int64]      = Int64{}
	_ EuclideanRing[complex128] = Complex128{}
)
