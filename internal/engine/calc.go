package engine

import "math"

// LineEmissions returns the emissions for one entry line in kg CO2e:
// activityData multiplied by the per-unit emission factor.
//
// A zero, NaN or infinite input yields 0 rather than an error. Draft
// entries are edited interactively and routinely pass through here before
// both fields are filled in; an incomplete line must not corrupt a
// running total.
func LineEmissions(activityData, emissionFactor float64) float64 {
	if !isUsable(activityData) || !isUsable(emissionFactor) {
		return 0
	}
	return activityData * emissionFactor
}

// isUsable reports whether v can participate in line arithmetic.
func isUsable(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ScopeTotal sums LineEmissions over all entries. A nil or empty list
// totals 0. No rounding is applied.
func ScopeTotal(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += LineEmissions(e.ActivityData, e.EmissionFactor)
	}
	return total
}

// ComputeTotals aggregates per-scope totals and the grand total for one
// calculation. Missing scope lists count as zero. The grand total is the
// exact floating-point sum of the three scope totals; rounding happens
// only at render time.
func ComputeTotals(data Data) Totals {
	t := Totals{
		Scope1: ScopeTotal(data.Scope1),
		Scope2: ScopeTotal(data.Scope2),
		Scope3: ScopeTotal(data.Scope3),
	}
	t.Total = t.Scope1 + t.Scope2 + t.Scope3
	return t
}
