package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinstat/methcomp/compare"
)

func TestDeming_ExactLines(t *testing.T) {
	tests := []struct {
		name          string
		method1       []float64
		method2       []float64
		wantSlope     float64
		wantIntercept float64
	}{
		{
			name:          "identity",
			method1:       []float64{1, 2, 3, 4},
			method2:       []float64{1, 2, 3, 4},
			wantSlope:     1,
			wantIntercept: 0,
		},
		{
			name:          "double",
			method1:       []float64{1, 2, 3, 4},
			method2:       []float64{2, 4, 6, 8},
			wantSlope:     2,
			wantIntercept: 0,
		},
		{
			name:          "shifted",
			method1:       []float64{1, 2, 3, 4, 5},
			method2:       []float64{3, 4, 5, 6, 7},
			wantSlope:     1,
			wantIntercept: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Deming(mustSeries(t, tt.method1, tt.method2))
			require.NoError(t, err)
			assert.Equal(t, KindDeming, model.Kind)
			assert.InDelta(t, tt.wantSlope, model.Slope, 1e-9)
			assert.InDelta(t, tt.wantIntercept, model.Intercept, 1e-9)
		})
	}
}

func TestDeming_NoisyData(t *testing.T) {
	method1 := []float64{10.2, 11.8, 13.1, 14.9, 16.2, 17.8, 19.1, 20.9, 22.2, 23.8}
	method2 := []float64{10.5, 11.6, 13.4, 14.7, 16.5, 17.6, 19.4, 20.7, 22.5, 23.6}

	model, err := Deming(mustSeries(t, method1, method2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, model.Slope, 0.05)
	assert.InDelta(t, 0.0, model.Intercept, 1.0)

	require.True(t, model.HasCI)
	assert.True(t, model.SlopeCI.Contains(model.Slope))
	assert.True(t, model.InterceptCI.Contains(model.Intercept))
}

func TestDeming_BootstrapDeterministic(t *testing.T) {
	series := mustSeries(t,
		[]float64{10.2, 11.8, 13.1, 14.9, 16.2, 17.8, 19.1, 20.9},
		[]float64{10.5, 11.6, 13.4, 14.7, 16.5, 17.6, 19.4, 20.7},
	)

	first, err := Deming(series, WithSeed(42))
	require.NoError(t, err)
	second, err := Deming(series, WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, first.SlopeCI, second.SlopeCI)
	assert.Equal(t, first.InterceptCI, second.InterceptCI)
}

func TestDeming_BootstrapDisabled(t *testing.T) {
	series := mustSeries(t,
		[]float64{1, 2, 3, 4},
		[]float64{1.1, 2.2, 2.9, 4.1},
	)

	model, err := Deming(series, WithBootstrap(0))
	require.NoError(t, err)
	assert.False(t, model.HasCI)
	assert.Zero(t, model.SlopeCI)
}

func TestDeming_VarianceRatio(t *testing.T) {
	series := mustSeries(t,
		[]float64{10.2, 11.8, 13.1, 14.9, 16.2, 17.8, 19.1, 20.9},
		[]float64{10.5, 11.6, 13.4, 14.7, 16.5, 17.6, 19.4, 20.7},
	)

	unit, err := Deming(series, WithBootstrap(0))
	require.NoError(t, err)
	weighted, err := Deming(series, WithVarianceRatio(4), WithBootstrap(0))
	require.NoError(t, err)
	assert.NotEqual(t, unit.Slope, weighted.Slope)

	// WithDeltaSD(2) is the same weighting expressed as a standard
	// deviation: lambda = 2^2.
	viaSD, err := Deming(series, WithDeltaSD(2), WithBootstrap(0))
	require.NoError(t, err)
	assert.InDelta(t, weighted.Slope, viaSD.Slope, 1e-12)
}

func TestDeming_InsufficientData(t *testing.T) {
	_, err := Deming(mustSeries(t, []float64{1, 2}, []float64{1, 2}))
	assert.ErrorIs(t, err, compare.ErrInsufficientData)
}

func TestDeming_Degenerate(t *testing.T) {
	// Uncorrelated pattern with sxy == 0.
	series := mustSeries(t,
		[]float64{1, 2, 3},
		[]float64{5, 9, 5},
	)

	_, err := Deming(series)
	assert.ErrorIs(t, err, compare.ErrDegenerateRegression)
}
