// Package equivalency translates emission totals (kg CO2e) into
// relatable real-world comparisons: passenger vehicles driven for a
// year, tree seedlings needed, homes powered, smartphones charged, and
// miles flown.
//
// Conversion is a derived convenience. It degrades to zero values on
// missing input rather than failing, so report generation is never
// blocked by an empty or in-progress calculation.
package equivalency

import (
	"math"

	"github.com/rshade/carbonfocus/internal/catalog"
)

// Equivalency factor names as they appear in the catalog dataset.
const (
	KeyPassengerVehicles = "passengerVehiclesPerYear"
	KeyTreesNeeded       = "treesNeeded"
	KeyHomesEnergyUse    = "homesEnergyUse"
	KeySmartphoneCharges = "smartphoneCharges"
	KeyMilesOnFlight     = "milesOnFlight"
)

// Factors holds the per-kg-CO2e multipliers for each equivalency
// category. The zero value converts everything to zero.
type Factors struct {
	PassengerVehiclesPerYear float64
	TreesNeeded              float64
	HomesEnergyUse           float64
	SmartphoneCharges        float64
	MilesOnFlight            float64
}

// FactorsFromCatalog extracts the equivalency multipliers from a loaded
// catalog map. Missing names simply leave their multiplier at zero.
func FactorsFromCatalog(m map[string]catalog.EquivalencyFactor) Factors {
	return Factors{
		PassengerVehiclesPerYear: m[KeyPassengerVehicles].Factor,
		TreesNeeded:              m[KeyTreesNeeded].Factor,
		HomesEnergyUse:           m[KeyHomesEnergyUse].Factor,
		SmartphoneCharges:        m[KeySmartphoneCharges].Factor,
		MilesOnFlight:            m[KeyMilesOnFlight].Factor,
	}
}

// Result holds the converted equivalencies for one total.
//
// Trees, Smartphones and FlightMiles are rounded up because they count
// discrete, indivisible units. Cars and Homes stay fractional and are
// truncated to fixed decimals at render time only.
type Result struct {
	Cars        float64 `json:"cars"`
	Trees       int     `json:"trees"`
	Homes       float64 `json:"homes"`
	Smartphones int     `json:"smartphones"`
	FlightMiles int     `json:"flightMiles"`
}

// Convert computes the equivalencies for totalKg using the given
// multipliers. A zero, negative, NaN or infinite total yields the zero
// Result, as does a zero-value Factors.
func Convert(totalKg float64, factors Factors) Result {
	if totalKg <= 0 || math.IsNaN(totalKg) || math.IsInf(totalKg, 0) {
		return Result{}
	}

	return Result{
		Cars:        totalKg * factors.PassengerVehiclesPerYear,
		Trees:       ceilToInt(totalKg * factors.TreesNeeded),
		Homes:       totalKg * factors.HomesEnergyUse,
		Smartphones: ceilToInt(totalKg * factors.SmartphoneCharges),
		FlightMiles: ceilToInt(totalKg * factors.MilesOnFlight),
	}
}

// ceilToInt rounds up to the next whole unit, clamping non-finite
// products to zero.
func ceilToInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Ceil(v))
}
