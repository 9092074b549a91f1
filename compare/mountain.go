package compare

import (
	"fmt"
	"math"
	"slices"

	"github.com/clinstat/methcomp/internal/options"
	"github.com/clinstat/methcomp/internal/stats"
)

// MountainResult holds the folded empirical CDF (mountain plot) of the
// paired differences of one comparison run.
//
// The curve is sampled at Steps evenly spaced quantile levels: point i
// has x-coordinate Quantiles[i] (the difference value at that level) and
// y-coordinate Folded[i] (the folded cumulative probability in percent,
// peaking at 50 at the median). The area under the curve equals the mean
// absolute deviation of the differences from the median, which makes AUC
// a single-number agreement summary.
type MountainResult struct {
	// Quantiles holds the difference value at each sampled quantile level.
	Quantiles []float64
	// Folded holds the folded CDF in percent at each sampled level.
	Folded []float64
	// AUC is the trapezoidal area under the folded curve.
	AUC float64
	// Median is the difference value at the 0.5 quantile.
	Median float64
	// MedianIdx is the index of the middle sample point.
	MedianIdx int
	// Coverage is the central coverage interval of the differences
	// (difference values at quantiles 0.5 -/+ coverage/200).
	Coverage Interval
	// CoverageIdx holds the sample indices closest to the coverage bounds.
	CoverageIdx [2]int

	// N is the number of measurement pairs.
	N int
	// Steps is the number of quantile levels sampled.
	Steps int
}

type mountainConfig struct {
	steps    int
	coverage float64
}

func defaultMountainConfig() mountainConfig {
	// 68.27% central coverage matches +/-1 SD under normality.
	return mountainConfig{steps: 100, coverage: 68.27}
}

// MountainOption is a functional option for Mountain.
type MountainOption = options.Option[*mountainConfig]

// WithSteps sets the number of quantile levels to sample; more steps
// give a smoother curve (default 100).
func WithSteps(steps int) MountainOption {
	return options.New(func(cfg *mountainConfig) error {
		if steps < 2 {
			return fmt.Errorf("steps must be at least 2, got %d", steps)
		}
		cfg.steps = steps

		return nil
	})
}

// WithCoverage sets the central coverage interval width in percent
// (default 68.27). Must lie in [0, 100].
func WithCoverage(coverage float64) MountainOption {
	return options.New(func(cfg *mountainConfig) error {
		if coverage < 0 || coverage > 100 {
			return fmt.Errorf("coverage must be in [0, 100], got %g", coverage)
		}
		cfg.coverage = coverage

		return nil
	})
}

// Mountain computes the folded empirical CDF of the paired differences
// (method 2 minus method 1) of a series.
func Mountain(series Series, opts ...MountainOption) (*MountainResult, error) {
	cfg := defaultMountainConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := series.Len()
	if n < MinPairs {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientData, n, MinPairs)
	}

	diffs := make([]float64, n)
	for i := range n {
		diffs[i] = series.method2[i] - series.method1[i]
	}
	slices.Sort(diffs)

	quantiles := make([]float64, cfg.steps)
	folded := make([]float64, cfg.steps)
	for i := range cfg.steps {
		q := float64(i) / float64(cfg.steps-1)
		quantiles[i] = stats.QuantileSorted(q, diffs)
		if q < 0.5 {
			folded[i] = q * 100
		} else {
			folded[i] = (1 - q) * 100
		}
	}

	var auc float64
	for i := 1; i < cfg.steps; i++ {
		auc += (quantiles[i] - quantiles[i-1]) * (folded[i] + folded[i-1]) / 2
	}

	coverage := Interval{
		Lower: stats.QuantileSorted(0.5-cfg.coverage/200, diffs),
		Upper: stats.QuantileSorted(0.5+cfg.coverage/200, diffs),
	}

	medianIdx := cfg.steps / 2

	return &MountainResult{
		Quantiles:   quantiles,
		Folded:      folded,
		AUC:         auc,
		Median:      stats.QuantileSorted(0.5, diffs),
		MedianIdx:   medianIdx,
		Coverage:    coverage,
		CoverageIdx: [2]int{nearestIdx(quantiles, coverage.Lower), nearestIdx(quantiles, coverage.Upper)},
		N:           n,
		Steps:       cfg.steps,
	}, nil
}

// nearestIdx returns the index of the value closest to target.
func nearestIdx(values []float64, target float64) int {
	best := 0
	bestDist := math.Abs(values[0] - target)
	for i, v := range values[1:] {
		if d := math.Abs(v - target); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}

	return best
}
