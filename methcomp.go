// Package methcomp provides statistical method comparison for clinical
// measurement instruments.
//
// When a new measurement method is introduced, it must be compared
// against an established one: do the two agree well enough to be used
// interchangeably? This module implements the standard toolkit for that
// question:
//
//   - Bland-Altman difference analysis with limits of agreement
//     (compare package)
//   - Mountain (folded empirical CDF) summaries (compare package)
//   - Passing-Bablok, Deming, and ordinary least squares regression
//     (regression package)
//   - Clarke and Parkes error grids for glucose monitors
//     (glucose package)
//   - Binary result snapshots with checksums and optional compression
//     (snapshot package)
//
// # Basic Usage
//
// Comparing two methods with Bland-Altman analysis:
//
//	import "github.com/clinstat/methcomp"
//
//	result, err := methcomp.BlandAltman(method1, method2)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("bias %.3f, limits [%.3f, %.3f]\n",
//	    result.Bias, result.LimitLower, result.LimitUpper)
//
// Fitting a Passing-Bablok regression:
//
//	model, err := methcomp.PassingBablok(method1, method2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(model.Formula)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the compare
// and regression packages, accepting raw slices and building the
// validated series internally. For repeated analyses of the same data,
// build a compare.Series once and use those packages directly.
package methcomp

import (
	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/regression"
)

// BlandAltman runs a Bland-Altman difference analysis on paired
// measurements from two methods.
//
// The inputs must have equal length, contain only finite values, and
// hold at least compare.MinPairs pairs.
func BlandAltman(method1, method2 []float64, opts ...compare.BlandAltmanOption) (*compare.BlandAltmanResult, error) {
	series, err := compare.NewSeries(method1, method2)
	if err != nil {
		return nil, err
	}

	return compare.BlandAltman(series, opts...)
}

// Mountain computes a mountain (folded empirical CDF) summary of the
// differences between two methods.
func Mountain(method1, method2 []float64, opts ...compare.MountainOption) (*compare.MountainResult, error) {
	series, err := compare.NewSeries(method1, method2)
	if err != nil {
		return nil, err
	}

	return compare.Mountain(series, opts...)
}

// PassingBablok fits a Passing-Bablok robust regression of method2 on
// method1.
func PassingBablok(method1, method2 []float64, opts ...regression.Option) (*regression.Model, error) {
	series, err := compare.NewSeries(method1, method2)
	if err != nil {
		return nil, err
	}

	return regression.PassingBablok(series, opts...)
}

// Deming fits a Deming errors-in-variables regression of method2 on
// method1.
func Deming(method1, method2 []float64, opts ...regression.Option) (*regression.Model, error) {
	series, err := compare.NewSeries(method1, method2)
	if err != nil {
		return nil, err
	}

	return regression.Deming(series, opts...)
}

// Linear fits an ordinary least squares regression of method2 on
// method1.
func Linear(method1, method2 []float64, opts ...regression.Option) (*regression.Model, error) {
	series, err := compare.NewSeries(method1, method2)
	if err != nil {
		return nil, err
	}

	return regression.Linear(series, opts...)
}
