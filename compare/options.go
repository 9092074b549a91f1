package compare

import (
	"fmt"

	"github.com/clinstat/methcomp/format"
	"github.com/clinstat/methcomp/internal/options"
)

// blandAltmanConfig holds per-call Bland-Altman configuration.
// Defaults are applied per call; there are no process-wide mutable
// defaults, so every analysis stays referentially transparent.
type blandAltmanConfig struct {
	mode            format.DiffMode
	limitMultiplier float64
	confidenceLevel float64
	withCI          bool
}

func defaultBlandAltmanConfig() blandAltmanConfig {
	return blandAltmanConfig{
		mode:            format.DiffAbsolute,
		limitMultiplier: 1.96,
		confidenceLevel: 0.95,
		withCI:          true,
	}
}

// BlandAltmanOption is a functional option for BlandAltman.
type BlandAltmanOption = options.Option[*blandAltmanConfig]

// WithDiffMode selects absolute (default) or percentage differences.
func WithDiffMode(mode format.DiffMode) BlandAltmanOption {
	return options.New(func(cfg *blandAltmanConfig) error {
		if mode != format.DiffAbsolute && mode != format.DiffPercentage {
			return fmt.Errorf("invalid difference mode: %s", mode)
		}
		cfg.mode = mode

		return nil
	})
}

// WithLimitMultiplier sets the multiple of the standard deviation at
// which the limits of agreement are placed. The default of 1.96
// corresponds to ~95% coverage under normality.
func WithLimitMultiplier(z float64) BlandAltmanOption {
	return options.New(func(cfg *blandAltmanConfig) error {
		if z <= 0 {
			return fmt.Errorf("limit multiplier must be positive, got %g", z)
		}
		cfg.limitMultiplier = z

		return nil
	})
}

// WithConfidenceLevel sets the confidence level for the intervals around
// the bias and the limits of agreement (default 0.95).
func WithConfidenceLevel(level float64) BlandAltmanOption {
	return options.New(func(cfg *blandAltmanConfig) error {
		if level <= 0 || level >= 1 {
			return fmt.Errorf("confidence level must be in (0, 1), got %g", level)
		}
		cfg.confidenceLevel = level

		return nil
	})
}

// WithoutCI disables confidence interval computation; the result then
// carries only the bias, SD and limits of agreement.
func WithoutCI() BlandAltmanOption {
	return options.NoError(func(cfg *blandAltmanConfig) {
		cfg.withCI = false
	})
}
