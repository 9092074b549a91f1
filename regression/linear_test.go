package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/internal/stats"
)

func TestLinear_ExactLine(t *testing.T) {
	series := mustSeries(t,
		[]float64{1, 2, 3, 4, 5},
		[]float64{3, 5, 7, 9, 11},
	)

	model, err := Linear(series)
	require.NoError(t, err)

	assert.Equal(t, KindLinear, model.Kind)
	assert.InDelta(t, 2.0, model.Slope, 1e-12)
	assert.InDelta(t, 1.0, model.Intercept, 1e-12)

	// Zero residuals collapse the intervals onto the estimates.
	require.True(t, model.HasCI)
	assert.InDelta(t, 0.0, model.SlopeCI.Width(), 1e-9)
	assert.InDelta(t, 0.0, model.InterceptCI.Width(), 1e-9)
}

func TestLinear_KnownDataset(t *testing.T) {
	// Textbook five-point fit: slope 0.6, intercept 2.2, RSS 2.4.
	series := mustSeries(t,
		[]float64{1, 2, 3, 4, 5},
		[]float64{2, 4, 5, 4, 5},
	)

	model, err := Linear(series)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, model.Slope, 1e-9)
	assert.InDelta(t, 2.2, model.Intercept, 1e-9)

	// t intervals with n-2 degrees of freedom.
	n := 5.0
	tCrit := stats.TCritical(0.95, n-2)
	seSlope := math.Sqrt(2.4 / (n - 2) / 10)
	assert.InDelta(t, 0.6-tCrit*seSlope, model.SlopeCI.Lower, 1e-9)
	assert.InDelta(t, 0.6+tCrit*seSlope, model.SlopeCI.Upper, 1e-9)

	seIntercept := math.Sqrt(2.4 / (n - 2) * (1/n + 9.0/10))
	assert.InDelta(t, 2.2-tCrit*seIntercept, model.InterceptCI.Lower, 1e-9)
	assert.InDelta(t, 2.2+tCrit*seIntercept, model.InterceptCI.Upper, 1e-9)
}

func TestLinear_Predict(t *testing.T) {
	model, err := Linear(mustSeries(t,
		[]float64{1, 2, 3, 4, 5},
		[]float64{3, 5, 7, 9, 11},
	))
	require.NoError(t, err)
	assert.InDelta(t, 21.0, model.Predict(10), 1e-9)
}

func TestLinear_Degenerate(t *testing.T) {
	series := mustSeries(t,
		[]float64{3, 3, 3, 3},
		[]float64{1, 2, 3, 4},
	)

	_, err := Linear(series)
	assert.ErrorIs(t, err, compare.ErrDegenerateRegression)
}

func TestLinear_TwoPairsNoCI(t *testing.T) {
	// Two pairs determine the line exactly but leave no degrees of
	// freedom for intervals.
	model, err := Linear(mustSeries(t, []float64{1, 2}, []float64{3, 5}))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, model.Slope, 1e-12)
	assert.InDelta(t, 1.0, model.Intercept, 1e-12)
	assert.False(t, model.HasCI)
}

func TestKind_Strings(t *testing.T) {
	assert.Equal(t, "passing-bablok", KindPassingBablok.String())
	assert.Equal(t, "deming", KindDeming.String())
	assert.Equal(t, "linear", KindLinear.String())
	assert.Equal(t, KindDeming, KindFromString("deming"))
}

func TestOptionValidation(t *testing.T) {
	series := mustSeries(t, []float64{1, 2, 3}, []float64{1, 2, 3})

	tests := []struct {
		name string
		opt  Option
	}{
		{"confidence at zero", WithConfidenceLevel(0)},
		{"confidence at one", WithConfidenceLevel(1)},
		{"zero workers", WithWorkers(0)},
		{"negative variance ratio", WithVarianceRatio(-1)},
		{"negative delta sd", WithDeltaSD(-0.5)},
		{"negative bootstrap", WithBootstrap(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PassingBablok(series, tt.opt)
			assert.Error(t, err)
		})
	}
}
