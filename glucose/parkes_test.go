package glucose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinstat/methcomp/compare"
)

func TestParkesZones_Type1(t *testing.T) {
	tests := []struct {
		name string
		ref  float64
		test float64
		want Zone
	}{
		{"perfect agreement", 100, 100, ZoneA},
		{"slight overestimate", 100, 130, ZoneB},
		{"moderate overestimate", 100, 250, ZoneC},
		{"large overestimate", 100, 400, ZoneD},
		{"hypo read as extreme hyper", 40, 500, ZoneE},
		{"hyper underestimated", 200, 50, ZoneC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones, err := ParkesZones([]float64{tt.ref}, []float64{tt.test}, UnitMgdL, Type1)
			require.NoError(t, err)
			require.Len(t, zones, 1)
			assert.Equal(t, tt.want, zones[0])
		})
	}
}

func TestParkesZones_Type2(t *testing.T) {
	tests := []struct {
		name string
		ref  float64
		test float64
		want Zone
	}{
		{"perfect agreement", 100, 100, ZoneA},
		{"slight overestimate", 100, 150, ZoneB},
		{"moderate overestimate", 100, 300, ZoneC},
		{"hypo read as extreme hyper", 30, 500, ZoneE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones, err := ParkesZones([]float64{tt.ref}, []float64{tt.test}, UnitMgdL, Type2)
			require.NoError(t, err)
			require.Len(t, zones, 1)
			assert.Equal(t, tt.want, zones[0])
		})
	}
}

func TestParkesZones_TypesDiffer(t *testing.T) {
	// The two grids draw the C/D boundaries differently; the same pair
	// can land in different zones.
	zones1, err := ParkesZones([]float64{100}, []float64{400}, UnitMgdL, Type1)
	require.NoError(t, err)
	zones2, err := ParkesZones([]float64{100}, []float64{400}, UnitMgdL, Type2)
	require.NoError(t, err)
	assert.Equal(t, ZoneD, zones1[0])
	assert.Equal(t, ZoneC, zones2[0])
}

func TestParkesZones_MmolL(t *testing.T) {
	refs := []float64{100, 100, 100, 100, 40, 200}
	tests := []float64{100, 130, 250, 400, 500, 50}

	mgdl, err := ParkesZones(refs, tests, UnitMgdL, Type1)
	require.NoError(t, err)

	refsMmol := make([]float64, len(refs))
	testsMmol := make([]float64, len(tests))
	for i := range refs {
		refsMmol[i] = refs[i] / 18
		testsMmol[i] = tests[i] / 18
	}
	mmol, err := ParkesZones(refsMmol, testsMmol, UnitMmolL, Type1)
	require.NoError(t, err)
	assert.Equal(t, mgdl, mmol)
}

func TestParkesZones_BeyondGridRange(t *testing.T) {
	// Readings past the published 550 mg/dL range extend the boundary
	// polygons instead of falling off the grid.
	zones, err := ParkesZones([]float64{700}, []float64{700}, UnitMgdL, Type1)
	require.NoError(t, err)
	assert.Equal(t, ZoneA, zones[0])

	zones, err = ParkesZones([]float64{700}, []float64{100}, UnitMgdL, Type1)
	require.NoError(t, err)
	assert.Greater(t, zones[0], ZoneB)
}

func TestParkesZones_UnknownType(t *testing.T) {
	_, err := ParkesZones([]float64{100}, []float64{100}, UnitMgdL, DiabetesType(9))
	assert.ErrorIs(t, err, compare.ErrInvalidValue)
}
