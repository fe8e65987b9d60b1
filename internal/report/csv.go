package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rshade/carbonfocus/internal/engine"
)

// exportColumns defines the ordered tabular export header. The header
// row and column order are part of the export contract and must not
// vary between runs.
//
//nolint:gochecknoglobals // Fixed column contract shared by CSV and XLSX writers.
var exportColumns = []string{
	"Scope",
	"Category",
	"Source",
	"Activity Data",
	"Unit",
	"Emission Factor",
	"Emissions (kg CO2e)",
}

// WriteCSV writes the flat tabular export: the header row, one row per
// entry across all three scopes in scope order, a blank separator row,
// and the four aggregate rows with only the emissions column populated.
func WriteCSV(w io.Writer, in Input) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("tabular export: write header: %w", err)
	}

	for _, scope := range engine.Scopes {
		for _, e := range in.Data.Entries(scope) {
			if err := cw.Write(entryRow(e)); err != nil {
				return fmt.Errorf("tabular export: write row: %w", err)
			}
		}
	}

	if err := cw.Write(make([]string, len(exportColumns))); err != nil {
		return fmt.Errorf("tabular export: write separator: %w", err)
	}

	for _, row := range totalRows(in.Totals) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("tabular export: write total: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("tabular export: flush: %w", err)
	}
	return nil
}

// entryRow maps one entry to its export row.
func entryRow(e engine.Entry) []string {
	return []string{
		scopeDisplay(e.Scope),
		e.Category,
		e.Source,
		num(e.ActivityData),
		e.Unit,
		num(e.EmissionFactor),
		emissions2(engine.LineEmissions(e.ActivityData, e.EmissionFactor)),
	}
}

// totalRows builds the four aggregate rows. Only the label and the
// emissions column carry values.
func totalRows(t engine.Totals) [][]string {
	aggregate := func(label string, v float64) []string {
		row := make([]string, len(exportColumns))
		row[0] = label
		row[len(row)-1] = emissions2(v)
		return row
	}

	return [][]string{
		aggregate("Scope 1 Total", t.Scope1),
		aggregate("Scope 2 Total", t.Scope2),
		aggregate("Scope 3 Total", t.Scope3),
		aggregate("Grand Total", t.Total),
	}
}
