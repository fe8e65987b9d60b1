package report

import (
	"time"

	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/equivalency"
)

// Section is one typed block of the report document. The section list
// carries the layout contract as data so any renderer (text, HTML, PDF)
// can consume the same structure without re-deriving order or content.
type Section interface {
	section()
}

// TitleSection is the opening block: platform name, report title,
// organization and generation date.
type TitleSection struct {
	Platform     string
	Title        string
	Organization string
	GeneratedAt  time.Time
}

// SummarySection presents the grand total and the three scope subtotals.
type SummarySection struct {
	Totals engine.Totals
}

// ScopeTableSection is a self-contained table for one non-empty scope:
// its entries plus a trailing total row. Renderers must keep the table
// on a single page when it fits.
type ScopeTableSection struct {
	Scope   engine.Scope
	Heading string
	Entries []engine.Entry
	Total   float64
}

// EquivalencySection lists the plain-language comparisons and the
// methodology note naming the reference standards behind the factors.
type EquivalencySection struct {
	Equivalencies equivalency.Result
}

func (TitleSection) section()       {}
func (SummarySection) section()     {}
func (ScopeTableSection) section()  {}
func (EquivalencySection) section() {}

// scopeHeadings are the fixed per-scope table headings.
//
//nolint:gochecknoglobals // Fixed display strings shared by renderers.
var scopeHeadings = map[engine.Scope]string{
	engine.Scope1: "SCOPE 1: DIRECT EMISSIONS",
	engine.Scope2: "SCOPE 2: PURCHASED ENERGY",
	engine.Scope3: "SCOPE 3: VALUE CHAIN",
}

// BuildSections assembles the document's section list in the fixed
// contract order: title, executive summary, one table per non-empty
// scope (scope order 1, 2, 3), then equivalencies. Empty scopes are
// omitted entirely rather than rendered as empty tables.
func BuildSections(in Input) []Section {
	sections := []Section{
		TitleSection{
			Platform:     PlatformName,
			Title:        ReportTitle,
			Organization: in.Organization,
			GeneratedAt:  in.GeneratedAt,
		},
		SummarySection{Totals: in.Totals},
	}

	for _, scope := range engine.Scopes {
		entries := in.Data.Entries(scope)
		if len(entries) == 0 {
			continue
		}
		sections = append(sections, ScopeTableSection{
			Scope:   scope,
			Heading: scopeHeadings[scope],
			Entries: entries,
			Total:   in.Totals.Scope(scope),
		})
	}

	sections = append(sections, EquivalencySection{Equivalencies: in.Equivalencies})
	return sections
}
