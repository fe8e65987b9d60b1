// Package engine implements the emissions calculation core: per-line
// emissions, per-scope totals, and grand totals in kilograms CO2e.
//
// All arithmetic is plain float64 with no intermediate rounding; unit
// conversion to tonnes and decimal truncation are presentation concerns
// handled at render time.
package engine

// Scope identifies a GHG Protocol emission scope.
type Scope string

const (
	// Scope1 covers direct emissions from owned or controlled sources.
	Scope1 Scope = "scope1"

	// Scope2 covers indirect emissions from purchased energy.
	Scope2 Scope = "scope2"

	// Scope3 covers all other indirect value-chain emissions.
	Scope3 Scope = "scope3"
)

// Scopes lists the three scopes in canonical display order.
//
//nolint:gochecknoglobals // Fixed ordering shared by renderers and validators.
var Scopes = []Scope{Scope1, Scope2, Scope3}

// Valid reports whether s is one of the three known scopes.
func (s Scope) Valid() bool {
	switch s {
	case Scope1, Scope2, Scope3:
		return true
	default:
		return false
	}
}

// Number returns the scope's ordinal (1, 2 or 3), or 0 for an unknown scope.
func (s Scope) Number() int {
	switch s {
	case Scope1:
		return 1
	case Scope2:
		return 2
	case Scope3:
		return 3
	default:
		return 0
	}
}

// Entry is a single line item of activity data.
//
// EmissionFactor is captured from the factor catalog when the entry is
// created, making the entry self-contained: recomputing a historical
// calculation yields the same result even after a catalog update.
type Entry struct {
	// Scope is the emission scope this entry belongs to.
	Scope Scope `json:"scope"`

	// Category is the catalog category identifier (e.g. "stationaryCombustion").
	Category string `json:"category"`

	// Source is the catalog source identifier (e.g. "naturalGas").
	Source string `json:"source"`

	// ActivityData is the measured physical quantity consumed.
	ActivityData float64 `json:"activityData"`

	// Unit is the physical unit of ActivityData. Display only.
	Unit string `json:"unit"`

	// EmissionFactor is kg CO2e per unit of activity.
	EmissionFactor float64 `json:"emissionFactor"`
}

// Data holds the entry lists for all three scopes of one calculation.
type Data struct {
	Scope1 []Entry `json:"scope1"`
	Scope2 []Entry `json:"scope2"`
	Scope3 []Entry `json:"scope3"`
}

// Entries returns the entry list for the given scope. Unknown scopes
// yield nil, which downstream code treats as an empty list.
func (d Data) Entries(s Scope) []Entry {
	switch s {
	case Scope1:
		return d.Scope1
	case Scope2:
		return d.Scope2
	case Scope3:
		return d.Scope3
	default:
		return nil
	}
}

// Totals holds aggregated emissions in kg CO2e.
// Total is always the exact sum of the three scope fields.
type Totals struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
	Total  float64 `json:"total"`
}

// Scope returns the total for the given scope, or 0 for an unknown scope.
func (t Totals) Scope(s Scope) float64 {
	switch s {
	case Scope1:
		return t.Scope1
	case Scope2:
		return t.Scope2
	case Scope3:
		return t.Scope3
	default:
		return 0
	}
}
