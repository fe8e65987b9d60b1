package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/report"
)

// Summary table rendering constants.
const (
	summaryBoxWidth     = 60
	summaryTitlePadding = 4
)

// boxBorderColor returns the lipgloss.Color used for summary box borders.
func boxBorderColor() lipgloss.Color { return lipgloss.Color("240") }

// boxTitleColor returns the lipgloss.Color used for summary box titles.
func boxTitleColor() lipgloss.Color { return lipgloss.Color("35") }

// renderOutput dispatches the calc result to the selected format.
func renderOutput(cmd *cobra.Command, format string, in report.Input) error {
	w := cmd.OutOrStdout()

	switch format {
	case outputTable:
		return renderSummary(w, in)
	case outputJSON:
		data, err := json.MarshalIndent(newSummaryPayload(in), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputCSV:
		return report.WriteCSV(w, in)
	case outputReport:
		return report.NewTextRenderer().Render(w, report.BuildSections(in))
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, csv or report)", format)
	}
}

// summaryPayload is the JSON shape of the calc summary output and the
// totals.json export.
type summaryPayload struct {
	Organization  string             `json:"organization,omitempty"`
	Totals        engine.Totals      `json:"totals"`
	Equivalencies equivalency.Result `json:"equivalencies"`
}

func newSummaryPayload(in report.Input) summaryPayload {
	return summaryPayload{
		Organization:  in.Organization,
		Totals:        in.Totals,
		Equivalencies: in.Equivalencies,
	}
}

// renderSummary writes the emissions summary table. TTY output gets a
// styled box; pipes and files get plain text.
func renderSummary(w io.Writer, in report.Input) error {
	if isWriterTerminal(w) {
		return renderStyledSummary(w, in)
	}
	return renderPlainSummary(w, in)
}

// renderStyledSummary renders a bordered summary box using Lip Gloss.
func renderStyledSummary(w io.Writer, in report.Input) error {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(boxTitleColor())

	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(boxBorderColor()).
		Padding(0, 1).
		Width(summaryBoxWidth)

	var content strings.Builder

	content.WriteString(titleStyle.Render("EMISSIONS SUMMARY"))
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", summaryBoxWidth-summaryTitlePadding))
	content.WriteString("\n\n")
	writeSummaryBody(&content, in)

	_, err := fmt.Fprintln(w, borderStyle.Render(content.String()))
	return err
}

// renderPlainSummary renders the summary as plain text.
func renderPlainSummary(w io.Writer, in report.Input) error {
	var content strings.Builder

	content.WriteString("EMISSIONS SUMMARY\n")
	content.WriteString(strings.Repeat("-", len("EMISSIONS SUMMARY")))
	content.WriteString("\n\n")
	writeSummaryBody(&content, in)

	_, err := fmt.Fprint(w, content.String())
	return err
}

// writeSummaryBody writes the format-independent summary lines.
func writeSummaryBody(content *strings.Builder, in report.Input) {
	p := message.NewPrinter(language.English)

	if in.Organization != "" {
		content.WriteString(p.Sprintf("Organization: %s\n\n", in.Organization))
	}

	content.WriteString(p.Sprintf("%-28s%s\n", "Scope 1 (Direct):", equivalency.FormatMass(in.Totals.Scope1)))
	content.WriteString(p.Sprintf("%-28s%s\n", "Scope 2 (Purchased Energy):", equivalency.FormatMass(in.Totals.Scope2)))
	content.WriteString(p.Sprintf("%-28s%s\n", "Scope 3 (Value Chain):", equivalency.FormatMass(in.Totals.Scope3)))
	content.WriteString(p.Sprintf("%-28s%s\n", "Total:", equivalency.FormatMass(in.Totals.Total)))

	eq := in.Equivalencies
	content.WriteString("\nThat is equivalent to:\n")
	content.WriteString(p.Sprintf("  %s passenger vehicles driven for one year\n", equivalency.FormatFloat(eq.Cars, 2)))
	content.WriteString(p.Sprintf("  %s tree seedlings grown for 10 years\n", equivalency.FormatNumber(int64(eq.Trees))))
	content.WriteString(p.Sprintf("  %s homes' energy use for one year\n", equivalency.FormatFloat(eq.Homes, 3)))
	content.WriteString(p.Sprintf("  %s smartphones charged\n", equivalency.FormatNumber(int64(eq.Smartphones))))
	content.WriteString(p.Sprintf("  %s miles flown on a passenger jet\n", equivalency.FormatNumber(int64(eq.FlightMiles))))
}
