package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin     = 10.0
	pdfPageWidth  = 210.0
	pdfRowHeight  = 7.0
	pdfTitleSize  = 14.0
	pdfHeaderSize = 11.0
	pdfBodySize   = 10.0
)

func writePDF(w io.Writer, table Table) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)

	colWidth := (pdfPageWidth - 2*pdfMargin) / float64(len(table.Headers))

	drawHeader := func() {
		pdf.SetFont("Arial", "B", pdfHeaderSize)
		pdf.SetFillColor(240, 240, 240)
		for _, h := range table.Headers {
			pdf.CellFormat(colWidth, pdfRowHeight, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", pdfBodySize)
	}

	// Repeat the column header on every page after the first
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			drawHeader()
		}
	})

	pdf.AddPage()
	if table.Title != "" {
		pdf.SetFont("Arial", "B", pdfTitleSize)
		pdf.CellFormat(0, 10, table.Title, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
	drawHeader()

	for _, row := range table.Rows {
		for c, v := range row {
			align := "R"
			if c == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, pdfRowHeight, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
