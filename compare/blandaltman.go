package compare

import (
	"fmt"
	"math"

	"github.com/clinstat/methcomp/format"
	"github.com/clinstat/methcomp/internal/options"
	"github.com/clinstat/methcomp/internal/stats"
)

// BlandAltmanResult holds the difference statistics of one comparison run.
//
// All fields are populated on success; a failed analysis produces no
// partial result. Differences are oriented method 2 minus method 1, so
// a positive Bias means method 2 reads higher.
type BlandAltmanResult struct {
	// Means holds the per-pair means (method1[i] + method2[i]) / 2.
	Means []float64
	// Diffs holds the per-pair differences; absolute mode method2[i] -
	// method1[i], percentage mode the same difference in percent of the
	// pair mean.
	Diffs []float64
	// Bias is the mean of Diffs.
	Bias float64
	// SD is the sample standard deviation of Diffs (n-1 denominator).
	SD float64
	// LimitLower and LimitUpper are the limits of agreement
	// Bias -/+ LimitMultiplier*SD.
	LimitLower float64
	LimitUpper float64
	// HasCI reports whether the confidence intervals below are populated.
	HasCI bool
	// BiasCI is the Student-t confidence interval around Bias.
	BiasCI Interval
	// LimitLowerCI and LimitUpperCI are the confidence intervals around
	// the lower and upper limit of agreement.
	LimitLowerCI Interval
	LimitUpperCI Interval

	// N is the number of measurement pairs.
	N int
	// Mode is the difference mode the analysis ran in.
	Mode format.DiffMode
	// LimitMultiplier is the SD multiple used for the limits of agreement.
	LimitMultiplier float64
	// ConfidenceLevel is the level used for the confidence intervals.
	ConfidenceLevel float64
}

// String returns a short human-readable summary of the result.
func (r *BlandAltmanResult) String() string {
	return fmt.Sprintf("BlandAltman{N: %d, Mode: %s, Bias: %.4f, SD: %.4f, Limits: [%.4f, %.4f]}",
		r.N, r.Mode, r.Bias, r.SD, r.LimitLower, r.LimitUpper)
}

// BlandAltman computes Bland-Altman difference statistics for a series.
//
// For each pair it computes the mean and the difference (method 2 minus
// method 1, optionally as a percentage of the pair mean), then the bias,
// the sample standard deviation of the differences, the limits of
// agreement at bias +/- z*SD, and, unless disabled, Student-t confidence
// intervals around the bias and both limits. The t critical value is
// used rather than a normal approximation because clinical series are
// often small.
//
// In percentage mode a pair whose mean is zero makes the relative
// difference undefined; the whole series is rejected with
// ErrDivisionByZero rather than silently skipping the pair, which would
// bias the statistics.
func BlandAltman(series Series, opts ...BlandAltmanOption) (*BlandAltmanResult, error) {
	cfg := defaultBlandAltmanConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := series.Len()
	if n < MinPairs {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientData, n, MinPairs)
	}

	means := make([]float64, n)
	diffs := make([]float64, n)
	for i := range n {
		x := series.method1[i]
		y := series.method2[i]
		mean := (x + y) / 2

		d := y - x
		if cfg.mode == format.DiffPercentage {
			if mean == 0 {
				return nil, fmt.Errorf("%w: pair at index %d", ErrDivisionByZero, i)
			}
			d = d / mean * 100
		}

		means[i] = mean
		diffs[i] = d
	}

	bias := stats.Mean(diffs)
	sd := stats.SampleSD(diffs)
	loaSD := cfg.limitMultiplier * sd

	result := &BlandAltmanResult{
		Means:           means,
		Diffs:           diffs,
		Bias:            bias,
		SD:              sd,
		LimitLower:      bias - loaSD,
		LimitUpper:      bias + loaSD,
		N:               n,
		Mode:            cfg.mode,
		LimitMultiplier: cfg.limitMultiplier,
		ConfidenceLevel: cfg.confidenceLevel,
	}

	if cfg.withCI {
		tCrit := stats.TCritical(cfg.confidenceLevel, float64(n-1))

		seBias := sd / math.Sqrt(float64(n))
		result.BiasCI = Interval{
			Lower: bias - tCrit*seBias,
			Upper: bias + tCrit*seBias,
		}

		// Closed-form standard error of a limit of agreement under
		// normality of the differences.
		seLimit := sd * math.Sqrt(3/float64(n))
		result.LimitLowerCI = Interval{
			Lower: result.LimitLower - tCrit*seLimit,
			Upper: result.LimitLower + tCrit*seLimit,
		}
		result.LimitUpperCI = Interval{
			Lower: result.LimitUpper - tCrit*seLimit,
			Upper: result.LimitUpper + tCrit*seLimit,
		}
		result.HasCI = true
	}

	return result, nil
}
