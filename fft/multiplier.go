package fft

import (
	"errors"
	"fmt"

	poly "github.com/jonathanmweiss/go-poly"
)

const (
	DefaultPrecision = 10
	DefaultThreshold = 64

	// float64 carries ~15.9 significant decimal digits.
	maxPrecision = 15
)

var (
	ErrNegativePrecision = errors.New("precision must be non-negative")
	ErrPrecisionTooLarge = fmt.Errorf("precision must be at most %d decimal places", maxPrecision)
	ErrNegativeThreshold = errors.New("threshold must be non-negative")
)

type config struct {
	precision  int
	threshold  int
	concurrent bool
}

// Option configures a Multiplier at initialization time.
type Option func(*config) error

// WithPrecision sets the number of decimal places kept from the transform.
func WithPrecision(precision int) Option {
	return func(c *config) error {
		if err := validatePrecision(precision); err != nil {
			return err
		}
		c.precision = precision
		return nil
	}
}

func validatePrecision(precision int) error {
	switch {
	case precision < 0:
		return ErrNegativePrecision
	case precision > maxPrecision:
		return ErrPrecisionTooLarge
	}

	return nil
}

// WithThreshold sets the smallest deg(p)+deg(q) multiplied with the transform.
// Smaller products use schoolbook multiplication, which is exact and faster
// for low degrees. A threshold of 0 always uses the transform.
func WithThreshold(threshold int) Option {
	return func(c *config) error {
		if threshold < 0 {
			return ErrNegativeThreshold
		}
		c.threshold = threshold
		return nil
	}
}

// WithConcurrency runs the two forward transforms concurrently.
func WithConcurrency(concurrent bool) Option {
	return func(c *config) error {
		c.concurrent = concurrent
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{
		precision: DefaultPrecision,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Multiplier picks between schoolbook and transform multiplication by degree.
type Multiplier struct {
	cfg *config
}

// New returns a Multiplier configured by opts.
func New(opts ...Option) (*Multiplier, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("fft: %w", err)
	}

	return &Multiplier{cfg: cfg}, nil
}

func (m *Multiplier) Precision() int {
	return m.cfg.precision
}

// UsesTransform reports whether Mul(p, q) goes through the transform.
func (m *Multiplier) UsesTransform(p, q *poly.Polynomial[float64]) bool {
	if p.Degree() == 0 || q.Degree() == 0 {
		return false
	}

	return p.Degree()+q.Degree() >= m.cfg.threshold
}

// Mul returns p*q.
func (m *Multiplier) Mul(p, q *poly.Polynomial[float64]) *poly.Polynomial[float64] {
	switch {
	case !m.UsesTransform(p, q):
		return p.Multiply(q)
	case m.cfg.concurrent:
		return MulConcurrent(p, q, m.cfg.precision)
	default:
		return Mul(p, q, m.cfg.precision)
	}
}
