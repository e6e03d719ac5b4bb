package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/valueobject"
)

const sheetName = "Report"

// excelRenderer implements adapter.DocumentRenderer producing XLSX workbooks.
type excelRenderer struct{}

// NewExcelRenderer creates a new Excel renderer instance.
func NewExcelRenderer() adapter.DocumentRenderer {
	return &excelRenderer{}
}

// ContentType returns the MIME type of the produced artifact.
func (r *excelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns the artifact file extension without a dot.
func (r *excelRenderer) FileExtension() string {
	return "xlsx"
}

// Render produces the XLSX bytes for the given document. The title goes in
// A1; each label-signature change emits a fresh bold header row.
func (r *excelRenderer) Render(doc *valueobject.TabularDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", doc.Title); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, fmt.Errorf("failed to style title: %w", err)
	}

	line := 3
	var prev *valueobject.Row
	for i := range doc.Rows {
		row := &doc.Rows[i]
		if prev == nil || !row.SameShape(*prev) {
			if prev != nil {
				line++
			}
			if err := r.writeHeader(f, row, line, headerStyle); err != nil {
				return nil, err
			}
			line++
		}
		if err := r.writeRow(f, row, line); err != nil {
			return nil, err
		}
		line++
		prev = row
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *excelRenderer) writeHeader(f *excelize.File, row *valueobject.Row, line, style int) error {
	for col, cell := range row.Cells {
		ref, err := excelize.CoordinatesToCellName(col+1, line)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheetName, ref, cell.Label); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, ref, ref, style); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}
	return nil
}

func (r *excelRenderer) writeRow(f *excelize.File, row *valueobject.Row, line int) error {
	for col, cell := range row.Cells {
		ref, err := excelize.CoordinatesToCellName(col+1, line)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheetName, ref, cell.DisplayValue()); err != nil {
			return fmt.Errorf("failed to write cell: %w", err)
		}
	}
	return nil
}
