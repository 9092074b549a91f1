// Package compare implements difference-based method comparison statistics
// for paired clinical measurements.
//
// Two measurement methods applied to the same samples yield two
// index-aligned value sequences. A Series validates and owns such a pair,
// and the analyzers in this package summarize how well the methods agree:
//
//   - BlandAltman computes per-pair means and differences, the mean
//     difference (bias), the sample standard deviation of differences,
//     limits of agreement, and Student-t confidence intervals around the
//     bias and each limit.
//   - Mountain computes a folded empirical CDF (mountain plot) of the
//     paired differences together with its median, central coverage
//     interval and area under the curve.
//
// # Basic Usage
//
//	series, err := compare.NewSeries(method1, method2)
//	if err != nil {
//	    return err
//	}
//
//	result, err := compare.BlandAltman(series)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("bias=%.3f limits=[%.3f, %.3f]\n",
//	    result.Bias, result.LimitLower, result.LimitUpper)
//
// Every analysis call is a pure function over an immutable Series: no
// shared state, no mutation of inputs, identical inputs always produce
// identical outputs. Calls may run concurrently on disjoint data.
//
// Validation failures abort the whole computation before any numeric
// work; partial results are never produced. Failure causes are reported
// through the sentinel errors ErrShapeMismatch, ErrInvalidValue,
// ErrInsufficientData, ErrDivisionByZero and ErrDegenerateRegression,
// which callers can test with errors.Is.
//
// Rendering (plots, axes, labeling) is out of scope: results are plain
// value structs for an external renderer or programmatic consumption.
package compare
