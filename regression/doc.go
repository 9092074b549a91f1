// Package regression implements method-comparison regression estimators
// for paired clinical measurements.
//
// Unlike ordinary least squares, method comparison cannot assume that the
// measurement error lives entirely on one axis: both methods measure the
// same underlying quantity with error. The package therefore offers three
// estimators with different error models:
//
//   - PassingBablok: robust, non-parametric regression via the median of
//     all pairwise slopes (Sen-type estimator) with analytic rank-based
//     confidence intervals. Insensitive to outliers and to which method
//     is placed on which axis.
//   - Deming: maximum-likelihood errors-in-both-variables regression for
//     a known (or assumed) variance ratio, with an optional bootstrap
//     confidence interval.
//   - Linear: ordinary least squares of method 2 on method 1, for the
//     cases where method 1 can be treated as reference.
//
// All estimators return a *Model holding the slope and intercept, their
// confidence intervals, and a human-readable formula:
//
//	series, err := compare.NewSeries(method1, method2)
//	if err != nil {
//	    return err
//	}
//
//	model, err := regression.PassingBablok(series)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(model.Formula)             // "y = 0.0125 + 1.0050 * x"
//	predicted := model.Predict(12.5)
//
// Every call is pure and deterministic: identical inputs produce
// identical models (the Deming bootstrap draws from an explicitly seeded
// generator). Calls may run concurrently on disjoint data.
//
// # Passing-Bablok exclusion rules
//
// The pairwise slope set follows the published procedure exactly: pairs
// with equal x and equal y contribute no information and are dropped;
// pairs with equal x only (vertical, infinite slope) are excluded from
// the ranked set but counted in Model.ExcludedVertical; slopes exactly
// equal to -1 are excluded, and the median rank is shifted by the number
// of slopes below -1 to compensate. Deviating from these rules changes
// the method's published statistical guarantees.
package regression
