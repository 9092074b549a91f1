package regression

import (
	"fmt"
	"strings"

	"github.com/clinstat/methcomp/compare"
)

// Kind represents the regression estimator that produced a Model.
type Kind int

const (
	// KindPassingBablok represents Passing-Bablok robust regression.
	KindPassingBablok Kind = iota
	// KindDeming represents Deming errors-in-both-variables regression.
	KindDeming
	// KindLinear represents ordinary least-squares regression.
	KindLinear
)

var kindNames = map[Kind]string{
	KindPassingBablok: "passing-bablok",
	KindDeming:        "deming",
	KindLinear:        "linear",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "unknown"
}

// KindFromString returns the Kind for a given string name.
// Returns Kind(-1) for unknown names.
func KindFromString(name string) Kind {
	for kind, kindName := range kindNames {
		if kindName == strings.ToLower(name) {
			return kind
		}
	}

	return Kind(-1)
}

// Model represents a fitted method-comparison regression line
// y = Intercept + Slope * x, with x from method 1 and y from method 2.
//
// A Model is an immutable value object created once per analysis call.
type Model struct {
	// Kind is the estimator that produced the model.
	Kind Kind
	// Slope is the slope point estimate.
	Slope float64
	// Intercept is the intercept point estimate.
	Intercept float64
	// HasCI reports whether SlopeCI and InterceptCI are populated.
	HasCI bool
	// SlopeCI is the confidence interval for the slope.
	SlopeCI compare.Interval
	// InterceptCI is the confidence interval for the intercept.
	InterceptCI compare.Interval
	// N is the number of measurement pairs.
	N int
	// ConfidenceLevel is the level used for the confidence intervals.
	ConfidenceLevel float64
	// Formula is a human-readable representation of the fitted line.
	Formula string
	// ExcludedVertical counts index pairs with equal x but different y
	// that Passing-Bablok excluded from the ranked slope set. Zero for
	// the other estimators. Diagnostic, not fatal.
	ExcludedVertical int
}

// Predict returns the model's estimate of the method 2 value for a
// method 1 value x.
func (m *Model) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// String returns a string representation of the model.
func (m *Model) String() string {
	if m.HasCI {
		return fmt.Sprintf("Model{Kind: %s, N: %d, Slope: %.4f [%.4f, %.4f], Intercept: %.4f [%.4f, %.4f]}",
			m.Kind, m.N, m.Slope, m.SlopeCI.Lower, m.SlopeCI.Upper,
			m.Intercept, m.InterceptCI.Lower, m.InterceptCI.Upper)
	}

	return fmt.Sprintf("Model{Kind: %s, N: %d, Slope: %.4f, Intercept: %.4f}",
		m.Kind, m.N, m.Slope, m.Intercept)
}

func formula(slope, intercept float64) string {
	return fmt.Sprintf("y = %.4f + %.4f * x", intercept, slope)
}
