package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/equivalency"
)

// Renderer consumes the typed section list produced by BuildSections.
// Section order, table columns and footer content are the contract;
// visual styling belongs to the implementation.
type Renderer interface {
	Render(w io.Writer, sections []Section) error
}

// Page geometry for the plain-text renderer. Content lines per page
// excludes the two footer lines appended to every page.
const (
	pageWidth        = 78
	pageContentLines = 48

	// minSectionSpace is the keep-together threshold: a table or
	// equivalency section never starts on a page with fewer lines left.
	minSectionSpace = 10
)

// TextRenderer renders the report document as paginated plain text.
// Output is deterministic: identical sections produce identical bytes.
type TextRenderer struct{}

// NewTextRenderer returns the plain-text report renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render lays the sections out into fixed-height pages and writes them
// with a per-page footer. Keep-together sections (scope tables and the
// equivalency block) start a fresh page instead of splitting mid-row
// when the current page lacks room.
func (r *TextRenderer) Render(w io.Writer, sections []Section) error {
	pages := layoutPages(sections)

	for i, page := range pages {
		if i > 0 {
			// Form feed separates pages in the plain-text document.
			if _, err := fmt.Fprint(w, "\f"); err != nil {
				return fmt.Errorf("report render: page break: %w", err)
			}
		}
		if err := writePage(w, page, i+1, len(pages)); err != nil {
			return err
		}
	}
	return nil
}

// layoutPages distributes rendered section lines across pages.
func layoutPages(sections []Section) [][]string {
	var pages [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			pages = append(pages, current)
			current = nil
		}
	}

	for _, s := range sections {
		lines := renderSection(s)
		remaining := pageContentLines - len(current)

		if keepTogether(s) {
			// Break early when the section cannot finish on this page but
			// could fit on a fresh one, or when the page is nearly full.
			if (len(lines) > remaining && len(lines) <= pageContentLines) || remaining < minSectionSpace {
				flush()
			}
		} else if remaining <= 0 {
			flush()
		}

		for _, line := range lines {
			if len(current) >= pageContentLines {
				flush()
			}
			current = append(current, line)
		}
	}

	flush()
	if len(pages) == 0 {
		pages = append(pages, []string{})
	}
	return pages
}

// keepTogether reports whether a section must not split across a page
// boundary when avoidable.
func keepTogether(s Section) bool {
	switch s.(type) {
	case ScopeTableSection, EquivalencySection:
		return true
	default:
		return false
	}
}

// writePage pads the page to its fixed height and appends the footer.
func writePage(w io.Writer, lines []string, pageNum, pageCount int) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("report render: write line: %w", err)
		}
	}
	for i := len(lines); i < pageContentLines; i++ {
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("report render: pad page: %w", err)
		}
	}

	pageLabel := fmt.Sprintf("Page %d of %d", pageNum, pageCount)
	padding := pageWidth - len(footerAttribution) - len(pageLabel)
	if padding < 1 {
		padding = 1
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("-", pageWidth)); err != nil {
		return fmt.Errorf("report render: footer rule: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", footerAttribution, strings.Repeat(" ", padding), pageLabel); err != nil {
		return fmt.Errorf("report render: footer: %w", err)
	}
	return nil
}

// renderSection turns one typed section into its text lines.
func renderSection(s Section) []string {
	switch sec := s.(type) {
	case TitleSection:
		return renderTitle(sec)
	case SummarySection:
		return renderSummary(sec)
	case ScopeTableSection:
		return renderScopeTable(sec)
	case EquivalencySection:
		return renderEquivalencies(sec)
	default:
		return nil
	}
}

func renderTitle(sec TitleSection) []string {
	rule := strings.Repeat("=", pageWidth)
	return []string{
		rule,
		sec.Platform,
		sec.Title,
		"Organization: " + sec.Organization,
		"Generated: " + sec.GeneratedAt.Format("January 2, 2006"),
		rule,
		"",
	}
}

func renderSummary(sec SummarySection) []string {
	return []string{
		"EXECUTIVE SUMMARY",
		strings.Repeat("-", len("EXECUTIVE SUMMARY")),
		fmt.Sprintf("%-28s%s", "Total Emissions:", equivalency.FormatMass(sec.Totals.Total)),
		fmt.Sprintf("%-28s%s", "Scope 1 (Direct):", equivalency.FormatMass(sec.Totals.Scope1)),
		fmt.Sprintf("%-28s%s", "Scope 2 (Purchased Energy):", equivalency.FormatMass(sec.Totals.Scope2)),
		fmt.Sprintf("%-28s%s", "Scope 3 (Value Chain):", equivalency.FormatMass(sec.Totals.Scope3)),
		"",
	}
}

// scope table column layout.
const scopeTableRowFormat = "%-24s %14s %-10s %12s %14s"

func renderScopeTable(sec ScopeTableSection) []string {
	lines := []string{
		sec.Heading,
		strings.Repeat("-", len(sec.Heading)),
		fmt.Sprintf(scopeTableRowFormat, "Source", "Activity Data", "Unit", "Factor", "Emissions"),
	}

	for _, e := range sec.Entries {
		lines = append(lines, fmt.Sprintf(scopeTableRowFormat,
			e.Source,
			num(e.ActivityData),
			e.Unit,
			num(e.EmissionFactor),
			emissions2(engine.LineEmissions(e.ActivityData, e.EmissionFactor)),
		))
	}

	lines = append(lines,
		fmt.Sprintf(scopeTableRowFormat, scopeDisplay(sec.Scope)+" Total", "", "", "", emissions2(sec.Total)),
		"",
	)
	return lines
}

func renderEquivalencies(sec EquivalencySection) []string {
	eq := sec.Equivalencies
	return []string{
		"EQUIVALENCIES",
		strings.Repeat("-", len("EQUIVALENCIES")),
		fmt.Sprintf("%-42s%s", "Passenger vehicles driven for one year:", equivalency.FormatFloat(eq.Cars, 2)),
		fmt.Sprintf("%-42s%s", "Tree seedlings grown for 10 years:", equivalency.FormatNumber(int64(eq.Trees))),
		fmt.Sprintf("%-42s%s", "Homes' energy use for one year:", equivalency.FormatFloat(eq.Homes, 3)),
		fmt.Sprintf("%-42s%s", "Smartphones charged:", equivalency.FormatNumber(int64(eq.Smartphones))),
		fmt.Sprintf("%-42s%s", "Miles flown on a passenger jet:", equivalency.FormatNumber(int64(eq.FlightMiles))),
		"",
		"Methodology: emission factors follow the GHG Protocol Corporate Standard;",
		"equivalency factors follow the EPA Greenhouse Gas Equivalencies Calculator.",
	}
}
