// Package glucose implements clinical accuracy zone assignment for blood
// glucose monitor comparisons.
//
// Given paired reference and test glucose concentrations, the error grid
// methods grade each pair by the clinical risk of acting on the test
// reading: zone A is clinically accurate, zone B benign, and zones C-E
// increasingly dangerous.
//
//   - ClarkeZones assigns zones on the Clarke error grid, whose regions
//     are closed-form inequalities.
//   - ParkesZones assigns zones on the Parkes consensus error grid, whose
//     regions are polygons published separately for type 1 and type 2
//     diabetes.
//
// Both accept concentrations in mg/dL or mmol/L and return one Zone per
// pair plus nothing else; counting and plotting are left to the caller
// (Percentages helps with the former).
//
//	zones, err := glucose.ClarkeZones(reference, test, glucose.UnitMgdL)
//	if err != nil {
//	    return err
//	}
//	shares := glucose.Percentages(zones)
//	fmt.Printf("zone A: %.1f%%\n", shares[glucose.ZoneA])
package glucose
