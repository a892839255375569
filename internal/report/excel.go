package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Rates"

func writeExcel(w io.Writer, table Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(table.Headers), 1)
	if err != nil {
		return fmt.Errorf("failed to resolve header range: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, styleID); err != nil {
		return fmt.Errorf("failed to apply style to header: %w", err)
	}

	for r, row := range table.Rows {
		cells := make([]any, len(row))
		for c, v := range row {
			// Numbers are stored as numbers so the sheet can chart them
			if n, err := strconv.ParseFloat(v, 64); err == nil && c > 0 {
				cells[c] = n
			} else {
				cells[c] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row %d: %w", r, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write data at %s: %w", cell, err)
		}
	}

	for i := range table.Headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, col, col, 20); err != nil {
			return fmt.Errorf("failed to set column width for %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
