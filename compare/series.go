package compare

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/clinstat/methcomp/internal/hash"
)

// MinPairs is the smallest number of measurement pairs any analyzer
// accepts; dispersion and slope estimates are undefined below it.
const MinPairs = 2

var (
	// ErrShapeMismatch reports method value sequences of unequal length.
	ErrShapeMismatch = errors.New("method value lengths differ")
	// ErrInvalidValue reports a non-finite (NaN or Inf) method value.
	ErrInvalidValue = errors.New("non-finite method value")
	// ErrInsufficientData reports fewer pairs than the requested statistic needs.
	ErrInsufficientData = errors.New("insufficient measurement pairs")
	// ErrDivisionByZero reports a zero pair mean in percentage difference mode.
	ErrDivisionByZero = errors.New("zero pair mean in percentage mode")
	// ErrDegenerateRegression reports that every candidate slope was excluded.
	ErrDegenerateRegression = errors.New("degenerate regression")
)

// Interval is a closed confidence interval [Lower, Upper].
type Interval struct {
	Lower float64
	Upper float64
}

// Width returns Upper - Lower.
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Contains reports whether v lies within the interval.
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

// Series holds one comparison run: index-aligned measurements of the
// same samples by two methods. Pair i of Method1 matches pair i of
// Method2; index alignment is the only way pairing is established.
//
// A Series is immutable after construction. NewSeries copies its inputs,
// so later mutation of the caller's slices cannot affect an analysis.
type Series struct {
	method1 []float64
	method2 []float64
}

// NewSeries validates the two method value sequences and builds a Series.
//
// It fails with ErrShapeMismatch when the lengths differ, ErrInvalidValue
// when any element is NaN or infinite (the offending method and index are
// included in the error message), and ErrInsufficientData for fewer than
// MinPairs pairs.
func NewSeries(method1, method2 []float64) (Series, error) {
	if err := Check(method1, method2); err != nil {
		return Series{}, err
	}

	return Series{
		method1: slices.Clone(method1),
		method2: slices.Clone(method2),
	}, nil
}

// Check validates two method value sequences without building a Series.
// It performs the same shape, finiteness and minimum-count checks as
// NewSeries and has no side effects.
func Check(method1, method2 []float64) error {
	if len(method1) != len(method2) {
		return fmt.Errorf("%w: method 1 has %d values, method 2 has %d",
			ErrShapeMismatch, len(method1), len(method2))
	}

	for i, v := range method1 {
		if !isFinite(v) {
			return fmt.Errorf("%w: method 1 value at index %d is %v", ErrInvalidValue, i, v)
		}
	}
	for i, v := range method2 {
		if !isFinite(v) {
			return fmt.Errorf("%w: method 2 value at index %d is %v", ErrInvalidValue, i, v)
		}
	}

	if len(method1) < MinPairs {
		return fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientData, len(method1), MinPairs)
	}

	return nil
}

// Len returns the number of measurement pairs.
func (s Series) Len() int {
	return len(s.method1)
}

// Method1 returns a copy of the method 1 values.
func (s Series) Method1() []float64 {
	return slices.Clone(s.method1)
}

// Method2 returns a copy of the method 2 values.
func (s Series) Method2() []float64 {
	return slices.Clone(s.method2)
}

// Fingerprint returns a 64-bit xxHash64 digest of the series values in
// pair order. Two series fingerprint equal iff they hold the same values
// in the same order, which makes the digest usable as a cache key for
// analysis results.
func (s Series) Fingerprint() uint64 {
	return hash.Fingerprint(s.method1, s.method2)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
