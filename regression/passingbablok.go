package regression

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/internal/options"
	"github.com/clinstat/methcomp/internal/stats"
)

// PassingBablok fits a robust, non-parametric regression line between
// the two methods of a series.
//
// The slope estimate is the offset-corrected median of the slopes of all
// lines through distinct index pairs; the intercept is median(y) -
// slope*median(x). Both are insensitive to outliers and make no
// assumption about which axis carries the measurement error.
//
// The slope confidence interval is analytic: rank bounds around the
// median at distance w/2, with w derived from the normal critical value
// and the pair count (not the slope count). The intercept interval is
// recomputed from the slope bounds through the median point.
//
// Fails with ErrDegenerateRegression when every candidate slope is
// excluded, e.g. when all x values are identical.
func PassingBablok(series compare.Series, opts ...Option) (*Model, error) {
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

	slopes, excludedVertical := pairwiseSlopes(x, y, cfg.workers)
	if len(slopes) == 0 {
		return nil, fmt.Errorf("%w: all candidate slopes excluded", compare.ErrDegenerateRegression)
	}
	slices.Sort(slopes)

	// The ranked set excludes slopes equal to -1; shifting every rank by
	// the number of slopes below -1 re-centers the median on the
	// remaining, no longer symmetric distribution.
	offset := 0
	for _, s := range slopes {
		if s < -1 {
			offset++
		}
	}

	nSlopes := len(slopes)

	var slope float64
	if nSlopes%2 == 1 {
		slope = stats.At(slopes, nSlopes/2+offset)
	} else {
		slope = (stats.At(slopes, nSlopes/2-1+offset) + stats.At(slopes, nSlopes/2+offset)) / 2
	}

	// Rank distance for the slope interval, driven by the original pair
	// count n rather than the slope count.
	w := stats.NormalCritical(cfg.confidenceLevel) *
		math.Sqrt(float64(n)*float64(n-1)*float64(2*n+5)/18)
	slopeLower := stats.At(slopes, int(math.Round((float64(nSlopes)-w)/2))+offset)
	slopeUpper := stats.At(slopes, int(math.Round((float64(nSlopes)+w)/2))+offset)

	medianX := stats.Median(x)
	medianY := stats.Median(y)
	intercept := medianY - slope*medianX

	// A larger slope pivots the line to a smaller intercept through the
	// median point, so the bounds come out reversed; order them.
	fromUpper := medianY - slopeUpper*medianX
	fromLower := medianY - slopeLower*medianX

	return &Model{
		Kind:             KindPassingBablok,
		Slope:            slope,
		Intercept:        intercept,
		HasCI:            true,
		SlopeCI:          compare.Interval{Lower: slopeLower, Upper: slopeUpper},
		InterceptCI:      compare.Interval{Lower: math.Min(fromUpper, fromLower), Upper: math.Max(fromUpper, fromLower)},
		N:                n,
		ConfidenceLevel:  cfg.confidenceLevel,
		Formula:          formula(slope, intercept),
		ExcludedVertical: excludedVertical,
	}, nil
}

// pairwiseSlopes computes the candidate slopes through all unordered
// index pairs i < j, applying the Passing-Bablok exclusion rules:
// duplicate points are dropped, vertical pairs are excluded and counted,
// and slopes exactly equal to -1 are excluded.
//
// With workers > 1 the i index space is partitioned round-robin across
// goroutines. Partitions have no ordering dependency; the caller sorts
// the merged set, so the result is identical for any worker count.
func pairwiseSlopes(x, y []float64, workers int) (slopes []float64, excludedVertical int) {
	n := len(x)
	if workers > n-1 {
		workers = n - 1
	}
	if workers <= 1 {
		return slopesForRows(x, y, 0, 1)
	}

	partSlopes := make([][]float64, workers)
	partExcluded := make([]int, workers)

	var wg sync.WaitGroup
	for k := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			partSlopes[k], partExcluded[k] = slopesForRows(x, y, k, workers)
		}()
	}
	wg.Wait()

	total := 0
	for _, part := range partSlopes {
		total += len(part)
	}
	slopes = make([]float64, 0, total)
	for k, part := range partSlopes {
		slopes = append(slopes, part...)
		excludedVertical += partExcluded[k]
	}

	return slopes, excludedVertical
}

// slopesForRows computes candidate slopes for rows start, start+stride,
// start+2*stride, ... pairing each row i with every j > i.
func slopesForRows(x, y []float64, start, stride int) (slopes []float64, excludedVertical int) {
	n := len(x)
	for i := start; i < n-1; i += stride {
		for j := i + 1; j < n; j++ {
			dx := x[j] - x[i]
			dy := y[j] - y[i]

			if dx == 0 {
				// A duplicate point pair carries no information; a
				// vertical pair has an undefined slope and must not
				// poison the ranked set.
				if dy != 0 {
					excludedVertical++
				}

				continue
			}

			s := dy / dx
			if s == -1 {
				// Historical convention: perfectly anti-correlated
				// pairs bias the estimate and are excluded.
				continue
			}

			slopes = append(slopes, s)
		}
	}

	return slopes, excludedVertical
}
