// Package catalog provides the read-only emission factor reference
// dataset: per-(scope, category, source) emission factors, ordered
// category descriptors for selection UIs, and the equivalency factors
// used to translate totals into plain-language comparisons.
//
// A Catalog is immutable once loaded. Factor lookups are the validation
// boundary between user-entered selections and the numeric engine: an
// unknown triple is an explicit lookup failure, never a silent zero.
package catalog

import (
	"sort"

	"github.com/rshade/carbonfocus/internal/engine"
)

// FactorRecord is one emission factor with its unit and description.
type FactorRecord struct {
	// Factor is kg CO2e per unit of activity.
	Factor float64 `json:"factor"`

	// Unit is the activity unit the factor applies to (e.g. "kg CO2e/kWh").
	Unit string `json:"unit"`

	// Description is a short human-readable label for the source.
	Description string `json:"description"`
}

// Category is a selectable emission category within a scope.
type Category struct {
	// ID is the stable category identifier (e.g. "stationaryCombustion").
	ID string `json:"id"`

	// Name is the display name (e.g. "Stationary Combustion").
	Name string `json:"name"`
}

// EquivalencyFactor is a per-kg-CO2e multiplier for one equivalency
// category.
type EquivalencyFactor struct {
	Factor float64 `json:"factor"`
}

// Catalog is the parsed reference dataset. Treat as read-only.
type Catalog struct {
	// Version is the dataset's semantic version, independent of any
	// calculation record. Entries capture their factor at creation time,
	// so stored calculations stay reproducible across catalog updates.
	Version string `json:"version"`

	// EmissionFactors maps scope -> category -> source -> factor record.
	EmissionFactors map[engine.Scope]map[string]map[string]FactorRecord `json:"emissionFactors"`

	// Categories maps scope -> ordered category descriptors.
	Categories map[engine.Scope][]Category `json:"categories"`

	// EquivalencyFactors maps equivalency name -> per-kg multiplier.
	EquivalencyFactors map[string]EquivalencyFactor `json:"equivalencyFactors"`
}

// Factor resolves a (scope, category, source) triple to its factor
// record. Any absent key yields ErrFactorNotFound; this is the only
// place where an entry's selections are checked against the dataset.
func (c *Catalog) Factor(scope engine.Scope, category, source string) (FactorRecord, error) {
	byCategory, ok := c.EmissionFactors[scope]
	if !ok {
		return FactorRecord{}, ErrFactorNotFound
	}
	bySource, ok := byCategory[category]
	if !ok {
		return FactorRecord{}, ErrFactorNotFound
	}
	rec, ok := bySource[source]
	if !ok {
		return FactorRecord{}, ErrFactorNotFound
	}
	return rec, nil
}

// ListCategories returns the ordered categories for a scope. An unknown
// scope yields an empty slice: "no options" is a valid selection-UI
// state, not an error.
func (c *Catalog) ListCategories(scope engine.Scope) []Category {
	cats := c.Categories[scope]
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}

// ListSources returns the source identifiers available under a scope and
// category, sorted for stable output. Unknown keys yield an empty slice.
func (c *Catalog) ListSources(scope engine.Scope, category string) []string {
	byCategory, ok := c.EmissionFactors[scope]
	if !ok {
		return []string{}
	}
	bySource, ok := byCategory[category]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(bySource))
	for source := range bySource {
		out = append(out, source)
	}
	sort.Strings(out)
	return out
}
