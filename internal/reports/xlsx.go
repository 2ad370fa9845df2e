package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/hr-analytics/internal/types"
)

// maxSheetName is the xlsx hard limit on sheet name length.
const maxSheetName = 31

// WriteWorkbook writes every report to an xlsx workbook, one sheet per
// report, header row in bold.
func WriteWorkbook(path string, employees []types.Employee, asOf time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, report := range All() {
		sheet := sheetName(report.Title)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		headers, rows := Tabulate(report.Compute(employees, asOf))

		headerCells := toAny(headers)
		if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", report.Name, err)
		}
		endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(sheet, "A1", endCell, style); err != nil {
			return fmt.Errorf("failed to style header for %s: %w", report.Name, err)
		}

		for j, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			rowCells := toAny(row)
			if err := f.SetSheetRow(sheet, cell, &rowCells); err != nil {
				return fmt.Errorf("failed to write row for %s: %w", report.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func sheetName(title string) string {
	if len(title) > maxSheetName {
		return title[:maxSheetName]
	}
	return title
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
