package regression

import (
	"fmt"
	"math"

	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/internal/options"
	"github.com/clinstat/methcomp/internal/stats"
)

// Linear fits an ordinary least-squares regression of method 2 on
// method 1. Unlike the Passing-Bablok and Deming estimators it assumes
// all measurement error lives on the method 2 axis, so it is only
// appropriate when method 1 can be treated as a reference.
//
// Confidence intervals use Student-t critical values with n-2 degrees of
// freedom and require at least 3 pairs; with exactly 2 pairs the model
// carries only the point estimates.
func Linear(series compare.Series, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := series.Len()
	if n < compare.MinPairs {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			compare.ErrInsufficientData, n, compare.MinPairs)
	}

	x := series.Method1()
	y := series.Method2()

	meanX := stats.Mean(x)
	meanY := stats.Mean(y)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	if sxx == 0 {
		return nil, fmt.Errorf("%w: all method 1 values identical", compare.ErrDegenerateRegression)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	model := &Model{
		Kind:            KindLinear,
		Slope:           slope,
		Intercept:       intercept,
		N:               n,
		ConfidenceLevel: cfg.confidenceLevel,
		Formula:         formula(slope, intercept),
	}

	if n > 2 {
		var rss float64
		for i := range x {
			r := y[i] - (intercept + slope*x[i])
			rss += r * r
		}
		residualVar := rss / float64(n-2)

		seSlope := math.Sqrt(residualVar / sxx)
		seIntercept := math.Sqrt(residualVar * (1/float64(n) + meanX*meanX/sxx))
		tCrit := stats.TCritical(cfg.confidenceLevel, float64(n-2))

		model.HasCI = true
		model.SlopeCI = compare.Interval{
			Lower: slope - tCrit*seSlope,
			Upper: slope + tCrit*seSlope,
		}
		model.InterceptCI = compare.Interval{
			Lower: intercept - tCrit*seIntercept,
			Upper: intercept + tCrit*seIntercept,
		}
	}

	return model, nil
}
