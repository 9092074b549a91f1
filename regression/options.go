package regression

import (
	"fmt"

	"github.com/clinstat/methcomp/internal/options"
)

// config holds per-call estimator configuration. Not every knob applies
// to every estimator; irrelevant options are ignored by the others.
type config struct {
	confidenceLevel float64
	workers         int

	// Deming only.
	varianceRatio float64
	deltaSD       float64
	bootstrap     int
	seed          uint64
}

func defaultConfig() config {
	return config{
		confidenceLevel: 0.95,
		workers:         1,
		bootstrap:       1000,
		seed:            1,
	}
}

// Option is a functional option shared by the regression estimators.
type Option = options.Option[*config]

// WithConfidenceLevel sets the confidence level for the slope and
// intercept intervals (default 0.95).
func WithConfidenceLevel(level float64) Option {
	return options.New(func(cfg *config) error {
		if level <= 0 || level >= 1 {
			return fmt.Errorf("confidence level must be in (0, 1), got %g", level)
		}
		cfg.confidenceLevel = level

		return nil
	})
}

// WithWorkers sets the number of goroutines the Passing-Bablok pairwise
// slope kernel may use (default 1). The kernel is O(n^2) in the number
// of pairs; partitioning the index space is a pure optimization and
// never changes the result.
func WithWorkers(workers int) Option {
	return options.New(func(cfg *config) error {
		if workers < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", workers)
		}
		cfg.workers = workers

		return nil
	})
}

// WithVarianceRatio sets the assumed known ratio of the residual variance
// of method 2 relative to method 1 for Deming regression. Takes
// precedence over WithDeltaSD.
func WithVarianceRatio(ratio float64) Option {
	return options.New(func(cfg *config) error {
		if ratio <= 0 {
			return fmt.Errorf("variance ratio must be positive, got %g", ratio)
		}
		cfg.varianceRatio = ratio

		return nil
	})
}

// WithDeltaSD sets the assumed known standard deviation ratio for Deming
// regression. Ignored when WithVarianceRatio is also given.
func WithDeltaSD(sd float64) Option {
	return options.New(func(cfg *config) error {
		if sd <= 0 {
			return fmt.Errorf("delta SD must be positive, got %g", sd)
		}
		cfg.deltaSD = sd

		return nil
	})
}

// WithBootstrap sets the number of bootstrap resamples Deming uses for
// its confidence interval (default 1000). Zero disables the interval;
// the model then carries only the analytic point estimates.
func WithBootstrap(resamples int) Option {
	return options.New(func(cfg *config) error {
		if resamples < 0 {
			return fmt.Errorf("bootstrap resamples must be non-negative, got %d", resamples)
		}
		cfg.bootstrap = resamples

		return nil
	})
}

// WithSeed sets the seed of the Deming bootstrap generator (default 1).
// Identical inputs and seed always produce identical intervals.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *config) {
		cfg.seed = seed
	})
}
