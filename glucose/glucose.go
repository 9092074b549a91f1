package glucose

import (
	"fmt"
	"math"

	"github.com/clinstat/methcomp/compare"
)

// Zone is a clinical risk grade on a glucose error grid, ordered from
// clinically accurate (ZoneA) to dangerous (ZoneE).
type Zone uint8

const (
	ZoneA Zone = iota
	ZoneB
	ZoneC
	ZoneD
	ZoneE
	numZones
)

// String returns the conventional single-letter zone label.
func (z Zone) String() string {
	if z >= numZones {
		return fmt.Sprintf("Zone(%d)", uint8(z))
	}
	return string(rune('A' + z))
}

// Unit identifies the concentration unit of the input readings.
type Unit uint8

const (
	// UnitMgdL is milligrams per decilitre.
	UnitMgdL Unit = iota
	// UnitMmolL is millimoles per litre.
	UnitMmolL
)

// String returns the unit name, e.g. "mg/dL".
func (u Unit) String() string {
	switch u {
	case UnitMgdL:
		return "mg/dL"
	case UnitMmolL:
		return "mmol/L"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// divisor converts the mg/dL grid constants into the input unit.
func (u Unit) divisor() (float64, error) {
	switch u {
	case UnitMgdL:
		return 1, nil
	case UnitMmolL:
		return 18, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %d", compare.ErrInvalidValue, uint8(u))
	}
}

// Percentages returns the share of readings falling in each zone, in
// percent. All five zones are present in the result even when empty.
func Percentages(zones []Zone) map[Zone]float64 {
	shares := make(map[Zone]float64, numZones)
	for z := ZoneA; z < numZones; z++ {
		shares[z] = 0
	}
	if len(zones) == 0 {
		return shares
	}
	for _, z := range zones {
		shares[z]++
	}
	scale := 100 / float64(len(zones))
	for z := range shares {
		shares[z] *= scale
	}
	return shares
}

// checkReadings validates paired glucose readings. Error grids grade each
// pair independently, so a single pair is enough.
func checkReadings(reference, test []float64) error {
	if len(reference) != len(test) {
		return fmt.Errorf("%w: reference has %d values, test has %d",
			compare.ErrShapeMismatch, len(reference), len(test))
	}
	if len(reference) == 0 {
		return fmt.Errorf("%w: need at least 1 pair, got 0", compare.ErrInsufficientData)
	}
	for i := range reference {
		if !finitePositive(reference[i]) {
			return fmt.Errorf("%w: reference[%d] = %v", compare.ErrInvalidValue, i, reference[i])
		}
		if !finitePositive(test[i]) {
			return fmt.Errorf("%w: test[%d] = %v", compare.ErrInvalidValue, i, test[i])
		}
	}
	return nil
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
