// Package render implements document renderer backends for report export.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/valueobject"
)

// pdfRenderer implements adapter.DocumentRenderer producing A4 PDFs.
type pdfRenderer struct{}

// NewPDFRenderer creates a new PDF renderer instance.
func NewPDFRenderer() adapter.DocumentRenderer {
	return &pdfRenderer{}
}

// ContentType returns the MIME type of the produced artifact.
func (r *pdfRenderer) ContentType() string {
	return "application/pdf"
}

// FileExtension returns the artifact file extension without a dot.
func (r *pdfRenderer) FileExtension() string {
	return "pdf"
}

// Render produces the PDF bytes for the given document. Consecutive rows with
// the same label signature share one table; a label change starts a new table
// with a fresh header band.
func (r *pdfRenderer) Render(doc *valueobject.TabularDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, pdfText(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	var prev *valueobject.Row
	for i := range doc.Rows {
		row := &doc.Rows[i]
		if prev == nil || !row.SameShape(*prev) {
			if prev != nil {
				pdf.Ln(6)
			}
			r.writeHeader(pdf, row)
		}
		r.writeRow(pdf, row)
		prev = row
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) writeHeader(pdf *fpdf.Fpdf, row *valueobject.Row) {
	width := columnWidth(len(row.Cells))
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for _, cell := range row.Cells {
		pdf.CellFormat(width, 8, pdfText(cell.Label), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func (r *pdfRenderer) writeRow(pdf *fpdf.Fpdf, row *valueobject.Row) {
	width := columnWidth(len(row.Cells))
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 220)
	for _, cell := range row.Cells {
		align := "L"
		if cell.Type == valueobject.CellTypeCurrency || cell.Type == valueobject.CellTypeInteger {
			align = "R"
		}
		pdf.CellFormat(width, 7, pdfText(cell.DisplayValue()), "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
}

// columnWidth spreads the columns across the printable A4 width.
func columnWidth(columns int) float64 {
	const printableWidth = 190.0
	if columns < 1 {
		columns = 1
	}
	return printableWidth / float64(columns)
}

// pdfText makes a string safe for the cp1252 core fonts. The rupee sign has
// no cp1252 representation, so PDF output substitutes "Rs ".
func pdfText(s string) string {
	return strings.ReplaceAll(s, valueobject.CurrencySymbol, "Rs ")
}
