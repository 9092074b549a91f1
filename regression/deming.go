package regression

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/internal/options"
	"github.com/clinstat/methcomp/internal/stats"
)

// Deming fits an errors-in-both-variables regression line between the
// two methods of a series.
//
// The fit is the maximum-likelihood solution for a known variance ratio
// lambda of the method 2 residuals relative to method 1 (set with
// WithVarianceRatio or WithDeltaSD, default 1). Point estimates are
// analytic; the confidence interval comes from a bootstrap over the
// measurement pairs (WithBootstrap, default 1000 resamples) using an
// explicitly seeded generator so identical inputs and seed always yield
// identical intervals.
//
// Requires at least 3 pairs: the residual variance carries an n-2
// denominator.
func Deming(series compare.Series, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := series.Len()
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d, deming regression needs at least 3",
			compare.ErrInsufficientData, n)
	}

	lambda := 1.0
	switch {
	case cfg.varianceRatio > 0:
		lambda = cfg.varianceRatio
	case cfg.deltaSD > 0:
		// deltaSD is a ratio of standard deviations; lambda is a
		// variance ratio.
		lambda = cfg.deltaSD * cfg.deltaSD
	}

	x := series.Method1()
	y := series.Method2()

	slope, intercept, err := demingFit(x, y, lambda)
	if err != nil {
		return nil, err
	}

	model := &Model{
		Kind:            KindDeming,
		Slope:           slope,
		Intercept:       intercept,
		N:               n,
		ConfidenceLevel: cfg.confidenceLevel,
		Formula:         formula(slope, intercept),
	}

	if cfg.bootstrap > 0 {
		slopeCI, interceptCI := demingBootstrap(x, y, lambda, cfg)
		model.HasCI = true
		model.SlopeCI = slopeCI
		model.InterceptCI = interceptCI
	}

	return model, nil
}

// demingFit computes the analytic Deming slope and intercept for a known
// variance ratio lambda.
func demingFit(x, y []float64, lambda float64) (slope, intercept float64, err error) {
	meanX := stats.Mean(x)
	meanY := stats.Mean(y)

	var sxx, syy, sxy float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	if sxy == 0 {
		return 0, 0, fmt.Errorf("%w: zero covariance between methods", compare.ErrDegenerateRegression)
	}

	dxy := syy - lambda*sxx
	slope = (dxy + math.Sqrt(dxy*dxy+4*lambda*sxy*sxy)) / (2 * sxy)
	intercept = meanY - slope*meanX

	return slope, intercept, nil
}

// demingBootstrap resamples the measurement pairs with replacement and
// returns quantile-based confidence intervals for slope and intercept.
// Degenerate resamples (zero covariance) are skipped.
func demingBootstrap(x, y []float64, lambda float64, cfg config) (slopeCI, interceptCI compare.Interval) {
	n := len(x)
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))

	slopes := make([]float64, 0, cfg.bootstrap)
	intercepts := make([]float64, 0, cfg.bootstrap)
	bx := make([]float64, n)
	by := make([]float64, n)

	for range cfg.bootstrap {
		for i := range n {
			idx := rng.IntN(n)
			bx[i] = x[idx]
			by[i] = y[idx]
		}

		slope, intercept, err := demingFit(bx, by, lambda)
		if err != nil {
			continue
		}
		slopes = append(slopes, slope)
		intercepts = append(intercepts, intercept)
	}

	if len(slopes) == 0 {
		// Every resample degenerate; fall back to a zero-width interval
		// around the analytic fit so the model stays fully populated.
		slope, intercept, _ := demingFit(x, y, lambda)

		return compare.Interval{Lower: slope, Upper: slope},
			compare.Interval{Lower: intercept, Upper: intercept}
	}

	slices.Sort(slopes)
	slices.Sort(intercepts)

	alpha := (1 - cfg.confidenceLevel) / 2
	slopeCI = compare.Interval{
		Lower: stats.QuantileSorted(alpha, slopes),
		Upper: stats.QuantileSorted(1-alpha, slopes),
	}
	interceptCI = compare.Interval{
		Lower: stats.QuantileSorted(alpha, intercepts),
		Upper: stats.QuantileSorted(1-alpha, intercepts),
	}

	return slopeCI, interceptCI
}
