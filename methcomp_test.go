package methcomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/regression"
)

var (
	method1 = []float64{1, 2, 3, 4, 5}
	method2 = []float64{1.1, 2.0, 3.2, 3.9, 5.3}
)

func TestBlandAltman(t *testing.T) {
	result, err := BlandAltman(method1, method2)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, result.Bias, 1e-9)
	assert.Equal(t, 5, result.N)
}

func TestBlandAltman_ForwardsOptions(t *testing.T) {
	result, err := BlandAltman(method1, method2, compare.WithoutCI())
	require.NoError(t, err)
	assert.False(t, result.HasCI)
}

func TestPassingBablok(t *testing.T) {
	model, err := PassingBablok(method1, method2)
	require.NoError(t, err)
	assert.Equal(t, regression.KindPassingBablok, model.Kind)
	assert.InDelta(t, 1.05, model.Slope, 1e-9)
	assert.InDelta(t, 0.05, model.Intercept, 1e-9)
}

func TestDeming(t *testing.T) {
	model, err := Deming(method1, method2, regression.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, regression.KindDeming, model.Kind)
	assert.InDelta(t, 1.0, model.Slope, 0.1)
}

func TestLinear(t *testing.T) {
	model, err := Linear(method1, method2)
	require.NoError(t, err)
	assert.Equal(t, regression.KindLinear, model.Kind)
	assert.InDelta(t, 1.0, model.Slope, 0.1)
}

func TestMountain(t *testing.T) {
	result, err := Mountain(method1, method2)
	require.NoError(t, err)
	assert.Equal(t, 5, result.N)
	assert.InDelta(t, 0.1, result.Median, 1e-9)
}

func TestWrappers_RejectInvalidInput(t *testing.T) {
	_, err := BlandAltman([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, compare.ErrShapeMismatch)

	_, err = PassingBablok([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, compare.ErrInsufficientData)

	_, err = Deming(nil, nil)
	assert.ErrorIs(t, err, compare.ErrInsufficientData)

	_, err = Mountain([]float64{1, 2}, nil)
	assert.ErrorIs(t, err, compare.ErrShapeMismatch)
}
