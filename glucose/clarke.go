package glucose

import "math"

// ClarkeZones grades paired reference and test glucose readings on the
// Clarke error grid and returns one Zone per pair.
//
// The grid boundaries are published in mg/dL; readings in mmol/L are
// handled by scaling the boundaries, not the data. Each pair is graded
// independently, so inputs of any length >= 1 are accepted.
func ClarkeZones(reference, test []float64, unit Unit) ([]Zone, error) {
	if err := checkReadings(reference, test); err != nil {
		return nil, err
	}
	n, err := unit.divisor()
	if err != nil {
		return nil, err
	}

	zones := make([]Zone, len(reference))
	for i := range reference {
		zones[i] = clarkeZone(reference[i], test[i], n)
	}
	return zones, nil
}

// clarkeZone evaluates the grid inequalities for a single pair. The
// conditions are checked from worst to best so that later matches
// override earlier ones; anything unmatched is zone B.
func clarkeZone(ref, pred, n float64) Zone {
	zone := ZoneB

	if (ref <= 70/n && pred >= 180/n) || (ref >= 180/n && pred <= 70/n) {
		zone = ZoneE
	}
	if pred >= 70/n && pred < 180/n && (ref < 70/n || ref > 240/n) {
		zone = ZoneD
	}
	// Upper C bound: pred above ref + 110 mg/dL.
	// Lower C bound: pred below the line through (130, 0) with slope 7/5.
	if (ref >= 130/n && ref <= 180/n && pred < 7.0/5.0*(ref-130/n)) ||
		(ref > 70/n && pred > 180/n && pred > ref+110/n) {
		zone = ZoneC
	}
	relErr := math.Abs(pred-ref) / ref * 100
	if relErr <= 20 || (ref < 70/n && pred < 70/n) {
		zone = ZoneA
	}
	return zone
}
