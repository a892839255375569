// Package report writes a normalized series as a downloadable CSV, XLSX or PDF table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
)

// Format is a supported export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps a query value to a Format. An empty value selects CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedExportFormat, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Extension returns the file extension of the format, with the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Table is a titled grid of text cells. Every row has one cell per header.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (t Table) validate() error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("table has no headers")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("data length (%d) of row %d does not match header length (%d)", len(row), i, len(t.Headers))
		}
	}
	return nil
}

// Write renders table to w in the given format.
func Write(w io.Writer, format Format, table Table) error {
	if err := table.validate(); err != nil {
		return err
	}
	switch format {
	case FormatCSV:
		return writeCSV(w, table)
	case FormatXLSX:
		return writeExcel(w, table)
	case FormatPDF:
		return writePDF(w, table)
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedExportFormat, format)
	}
}
