// Package stats provides the shared statistical primitives used by the
// compare and regression analyzers: descriptive statistics, critical
// values of the standard normal and Student-t distributions, and the
// clamped rank indexer used by rank-based confidence intervals.
//
// All functions are pure and never mutate their inputs.
package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// SampleSD returns the sample standard deviation (n-1 denominator).
func SampleSD(values []float64) float64 {
	return math.Sqrt(stat.Variance(values, nil))
}

// Median returns the median of values, averaging the two central
// elements for even-length input. The input is not modified.
func Median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return QuantileSorted(0.5, sorted)
}

// QuantileSorted returns the p-quantile of an ascending-sorted sample
// using linear interpolation between the two nearest order statistics
// (position h = p*(n-1)).
//
// gonum's stat.Quantile implements the Empirical and LinInterp cumulant
// kinds, neither of which matches this convention; the analyzers need it
// because the mountain plot and median-based intercepts are defined in
// terms of interpolated quantiles.
func QuantileSorted(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo < 0 {
		return sorted[0]
	}
	if lo >= n-1 {
		return sorted[n-1]
	}

	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// NormalCritical returns the two-sided standard normal critical value
// for the given confidence level, e.g. 1.9600 for level 0.95.
func NormalCritical(level float64) float64 {
	n := distuv.Normal{Mu: 0, Sigma: 1}

	return n.Quantile(0.5 + level/2)
}

// TCritical returns the two-sided Student-t critical value for the given
// confidence level and degrees of freedom, e.g. 2.7764 for level 0.95
// and df 4. Small-sample confidence intervals must use this rather than
// the normal approximation.
func TCritical(level, df float64) float64 {
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return t.Quantile(0.5 + level/2)
}

// At returns sorted[idx] with idx clamped to the valid range [0, len-1].
// Rank-based interval bounds can land outside the slope sequence for
// small samples; clamping degrades the interval instead of panicking.
func At(sorted []float64, idx int) float64 {
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}

	return sorted[idx]
}
