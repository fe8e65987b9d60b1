package report

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v2"

	"github.com/rshade/carbonfocus/internal/engine"
)

// xlsxSheetName is the single worksheet holding the tabular export.
const xlsxSheetName = "Emissions"

// WriteXLSX writes the tabular export as a spreadsheet. Row content and
// ordering are identical to the CSV export; only the container differs.
func WriteXLSX(w io.Writer, in Input) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(xlsxSheetName)
	if err != nil {
		return fmt.Errorf("xlsx export: add sheet: %w", err)
	}

	addRow(sheet, exportColumns)

	for _, scope := range engine.Scopes {
		for _, e := range in.Data.Entries(scope) {
			addRow(sheet, entryRow(e))
		}
	}

	addRow(sheet, make([]string, len(exportColumns)))
	for _, row := range totalRows(in.Totals) {
		addRow(sheet, row)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("xlsx export: write workbook: %w", err)
	}
	return nil
}

// addRow appends one string row to the sheet.
func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		cell := row.AddCell()
		cell.Value = v
	}
}
