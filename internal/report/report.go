// Package report renders a finished calculation into exportable
// artifacts: a flat tabular export (CSV or XLSX) and a paginated,
// sectioned report document.
//
// Both renderers are pure functions of their input. Given identical
// entries, totals, equivalencies, organization and generation date they
// produce byte-identical output; nothing in this package reads the
// clock.
package report

import (
	"strconv"
	"time"

	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/equivalency"
)

// PlatformName appears in the report title block and footer.
const PlatformName = "CarbonFocus"

// ReportTitle is the fixed document title.
const ReportTitle = "GHG Emissions Report"

// footerAttribution is the fixed per-page attribution string.
const footerAttribution = "Generated by CarbonFocus"

// Input is the shared upstream data both renderers consume. Callers
// exclude invalid entries before building an Input; renderers trust the
// entry lists they are given.
type Input struct {
	// Organization is the reporting organization's display name.
	Organization string

	// GeneratedAt is the explicitly passed generation timestamp. It is
	// the only date that appears in the output.
	GeneratedAt time.Time

	// Data holds the accepted entries per scope.
	Data engine.Data

	// Totals holds the aggregated emissions for Data.
	Totals engine.Totals

	// Equivalencies holds the converted plain-language comparisons.
	Equivalencies equivalency.Result
}

// scopeDisplay maps a scope to its export label ("Scope 1").
func scopeDisplay(s engine.Scope) string {
	return "Scope " + strconv.Itoa(s.Number())
}

// emissions2 formats an emissions figure with fixed two-decimal
// precision, the rounding applied to every emissions cell.
func emissions2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// num formats activity data and factors in their natural numeric
// representation, without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
