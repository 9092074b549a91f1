package glucose

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/clinstat/methcomp/compare"
)

// DiabetesType selects which of the two published Parkes consensus grids
// applies to the patient population.
type DiabetesType uint8

const (
	// Type1 is the grid for type 1 diabetes.
	Type1 DiabetesType = 1
	// Type2 is the grid for type 2 diabetes.
	Type2 DiabetesType = 2
)

// String returns "type 1" or "type 2".
func (t DiabetesType) String() string {
	switch t {
	case Type1:
		return "type 1"
	case Type2:
		return "type 2"
	default:
		return fmt.Sprintf("DiabetesType(%d)", uint8(t))
	}
}

// ParkesZones grades paired reference and test glucose readings on the
// Parkes consensus error grid for the given diabetes type and returns one
// Zone per pair.
//
// The zone regions are polygons with vertices published in mg/dL; as with
// ClarkeZones, mmol/L inputs scale the polygons rather than the data. The
// outer boundary polygons are open-ended in the published tables, so they
// are extended to cover the data range before containment testing.
func ParkesZones(reference, test []float64, unit Unit, diabetes DiabetesType) ([]Zone, error) {
	if err := checkReadings(reference, test); err != nil {
		return nil, err
	}
	n, err := unit.divisor()
	if err != nil {
		return nil, err
	}

	var regions []parkesRegion
	switch diabetes {
	case Type1:
		regions = parkesType1(n, parkesExtent(reference, test, n))
	case Type2:
		regions = parkesType2(n, parkesExtent(reference, test, n))
	default:
		return nil, fmt.Errorf("%w: unknown diabetes type %d", compare.ErrInvalidValue, uint8(diabetes))
	}

	zones := make([]Zone, len(reference))
	for i := range reference {
		// Regions are ordered from benign to dangerous and the last
		// containing region wins; points outside all regions are zone A.
		zone := ZoneA
		p := orb.Point{reference[i], test[i]}
		for _, r := range regions {
			if planar.PolygonContains(r.polygon, p) {
				zone = r.zone
			}
		}
		zones[i] = zone
	}
	return zones, nil
}

type parkesRegion struct {
	polygon orb.Polygon
	zone    Zone
}

type extent struct {
	maxX, maxY float64
}

// parkesExtent computes how far the open-ended boundary polygons must
// extend to enclose every reading, with a 20 mg/dL margin and a floor at
// the grid's published 550 mg/dL range.
func parkesExtent(reference, test []float64, n float64) extent {
	maxRef, maxTest := reference[0], test[0]
	for i := 1; i < len(reference); i++ {
		if reference[i] > maxRef {
			maxRef = reference[i]
		}
		if test[i] > maxTest {
			maxTest = test[i]
		}
	}
	ext := extent{maxX: maxRef + 20/n, maxY: maxTest + 20/n}
	if ext.maxX < 550/n {
		ext.maxX = 550 / n
	}
	if ext.maxY < ext.maxX {
		ext.maxY = ext.maxX
	}
	if ext.maxY < 550/n {
		ext.maxY = 550 / n
	}
	return ext
}

// slope of the boundary segment between two published vertices, in the
// original mg/dL coordinates (unit-free).
func coef(x0, y0, x1, y1 float64) float64 {
	return (y1 - y0) / (x1 - x0)
}

// endX extends a boundary segment from (startX, startY) with slope c
// until it reaches maxY, returning the x coordinate there.
func endX(startX, startY, maxY, c float64) float64 {
	return (maxY-startY)/c + startX
}

// endY extends a boundary segment from (startX, startY) with slope c
// until it reaches maxX, returning the y coordinate there.
func endY(startX, startY, maxX, c float64) float64 {
	return (maxX-startX)*c + startY
}

func ring(points ...orb.Point) orb.Polygon {
	r := make(orb.Ring, 0, len(points)+1)
	r = append(r, points...)
	r = append(r, points[0])
	return orb.Polygon{r}
}

// parkesType1 builds the type 1 consensus grid regions, scaled to the
// input unit by n and extended to the data range.
func parkesType1(n float64, ext extent) []parkesRegion {
	ce := coef(35, 155, 50, 550)
	cdu := coef(80, 215, 125, 550)
	cdl := coef(250, 40, 550, 150)
	ccu := coef(70, 110, 260, 550)
	ccl := coef(260, 130, 550, 250)
	cbu := coef(280, 380, 430, 550)
	cbl := coef(385, 300, 550, 450)

	maxX, maxY := ext.maxX, ext.maxY
	return []parkesRegion{
		{zone: ZoneB, polygon: ring(
			orb.Point{50 / n, 0}, orb.Point{50 / n, 30 / n}, orb.Point{170 / n, 145 / n},
			orb.Point{385 / n, 300 / n}, orb.Point{maxX, endY(385/n, 300/n, maxX, cbl)},
			orb.Point{maxX, 0},
		)},
		{zone: ZoneB, polygon: ring(
			orb.Point{0, 50 / n}, orb.Point{30 / n, 50 / n}, orb.Point{140 / n, 170 / n},
			orb.Point{280 / n, 380 / n}, orb.Point{endX(280/n, 380/n, maxY, cbu), maxY},
			orb.Point{0, maxY},
		)},
		{zone: ZoneC, polygon: ring(
			orb.Point{120 / n, 0}, orb.Point{120 / n, 30 / n}, orb.Point{260 / n, 130 / n},
			orb.Point{maxX, endY(260/n, 130/n, maxX, ccl)}, orb.Point{maxX, 0},
		)},
		{zone: ZoneC, polygon: ring(
			orb.Point{0, 60 / n}, orb.Point{30 / n, 60 / n}, orb.Point{50 / n, 80 / n},
			orb.Point{70 / n, 110 / n}, orb.Point{endX(70/n, 110/n, maxY, ccu), maxY},
			orb.Point{0, maxY},
		)},
		{zone: ZoneD, polygon: ring(
			orb.Point{250 / n, 0}, orb.Point{250 / n, 40 / n},
			orb.Point{maxX, endY(410/n, 110/n, maxX, cdl)}, orb.Point{maxX, 0},
		)},
		{zone: ZoneD, polygon: ring(
			orb.Point{0, 100 / n}, orb.Point{25 / n, 100 / n}, orb.Point{50 / n, 125 / n},
			orb.Point{80 / n, 215 / n}, orb.Point{endX(80/n, 215/n, maxY, cdu), maxY},
			orb.Point{0, maxY},
		)},
		{zone: ZoneE, polygon: ring(
			orb.Point{0, 150 / n}, orb.Point{35 / n, 155 / n},
			orb.Point{endX(35/n, 155/n, maxY, ce), maxY}, orb.Point{0, maxY},
		)},
	}
}

// parkesType2 builds the type 2 consensus grid regions.
func parkesType2(n float64, ext extent) []parkesRegion {
	ce := coef(35, 200, 50, 550)
	cdu := coef(35, 90, 125, 550)
	cdl := coef(410, 110, 550, 160)
	ccu := coef(30, 60, 280, 550)
	ccl := coef(260, 130, 550, 250)
	cbu := coef(230, 330, 440, 550)
	cbl := coef(330, 230, 550, 450)

	maxX, maxY := ext.maxX, ext.maxY
	return []parkesRegion{
		{zone: ZoneB, polygon: ring(
			orb.Point{50 / n, 0}, orb.Point{50 / n, 30 / n}, orb.Point{90 / n, 80 / n},
			orb.Point{330 / n, 230 / n}, orb.Point{maxX, endY(330/n, 230/n, maxX, cbl)},
			orb.Point{maxX, 0},
		)},
		{zone: ZoneB, polygon: ring(
			orb.Point{0, 50 / n}, orb.Point{30 / n, 50 / n}, orb.Point{230 / n, 330 / n},
			orb.Point{endX(230/n, 330/n, maxY, cbu), maxY}, orb.Point{0, maxY},
		)},
		{zone: ZoneC, polygon: ring(
			orb.Point{90 / n, 0}, orb.Point{260 / n, 130 / n},
			orb.Point{maxX, endY(260/n, 130/n, maxX, ccl)}, orb.Point{maxX, 0},
		)},
		{zone: ZoneC, polygon: ring(
			orb.Point{0, 60 / n}, orb.Point{30 / n, 60 / n},
			orb.Point{endX(30/n, 60/n, maxY, ccu), maxY}, orb.Point{0, maxY},
		)},
		{zone: ZoneD, polygon: ring(
			orb.Point{250 / n, 0}, orb.Point{250 / n, 40 / n}, orb.Point{410 / n, 110 / n},
			orb.Point{maxX, endY(410/n, 110/n, maxX, cdl)}, orb.Point{maxX, 0},
		)},
		{zone: ZoneD, polygon: ring(
			orb.Point{0, 80 / n}, orb.Point{25 / n, 80 / n}, orb.Point{35 / n, 90 / n},
			orb.Point{endX(35/n, 90/n, maxY, cdu), maxY}, orb.Point{0, maxY},
		)},
		{zone: ZoneE, polygon: ring(
			orb.Point{0, 200 / n}, orb.Point{35 / n, 200 / n},
			orb.Point{endX(35/n, 200/n, maxY, ce), maxY}, orb.Point{0, maxY},
		)},
	}
}
