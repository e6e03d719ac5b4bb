// Package valueobject defines immutable value types shared across layers.
package valueobject

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the fixed symbol applied to currency cells at render time.
// Cell values themselves carry only the two-decimal number.
const CurrencySymbol = "₹"

// CellType describes the semantic type of a cell so renderers can format it
// without knowing anything about the report it came from.
type CellType string

const (
	CellTypeCurrency CellType = "currency"
	CellTypeInteger  CellType = "integer"
	CellTypeDate     CellType = "date"
	CellTypeText     CellType = "text"
)

// Cell is one labeled, typed value in a tabular document.
type Cell struct {
	Label string   `json:"label"`
	Type  CellType `json:"type"`
	Value string   `json:"value"`
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell `json:"cells"`
}

// Labels returns the ordered cell labels of the row. Consecutive rows with
// equal labels form one table; renderers emit a new header whenever the
// label signature changes.
func (r Row) Labels() []string {
	labels := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		labels[i] = c.Label
	}
	return labels
}

// SameShape reports whether two rows carry the same ordered labels.
func (r Row) SameShape(other Row) bool {
	if len(r.Cells) != len(other.Cells) {
		return false
	}
	for i := range r.Cells {
		if r.Cells[i].Label != other.Cells[i].Label {
			return false
		}
	}
	return true
}

// TabularDocument is the rendering-agnostic output of the report renderer:
// a title and an ordered sequence of rows of labeled, typed cells. HTML, PDF
// and spreadsheet backends all consume the same document.
type TabularDocument struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// NewTabularDocument creates an empty document with the given title.
func NewTabularDocument(title string) *TabularDocument {
	return &TabularDocument{Title: title}
}

// AppendRow appends a row built from the given cells.
func (d *TabularDocument) AppendRow(cells ...Cell) {
	d.Rows = append(d.Rows, Row{Cells: cells})
}

// CurrencyCell builds a currency cell. The value keeps exactly two decimal
// places so a rendered 1234.5 reads back as "1234.50".
func CurrencyCell(label string, amount decimal.Decimal) Cell {
	return Cell{Label: label, Type: CellTypeCurrency, Value: amount.StringFixed(2)}
}

// IntegerCell builds an integer cell.
func IntegerCell(label string, value int64) Cell {
	return Cell{Label: label, Type: CellTypeInteger, Value: strconv.FormatInt(value, 10)}
}

// DateCell builds a date cell formatted as YYYY-MM-DD.
func DateCell(label string, date time.Time) Cell {
	return Cell{Label: label, Type: CellTypeDate, Value: date.Format("2006-01-02")}
}

// TextCell builds a plain text cell.
func TextCell(label, value string) Cell {
	return Cell{Label: label, Type: CellTypeText, Value: value}
}

// DisplayValue returns the value a renderer should print: currency cells get
// the fixed currency symbol prefixed, everything else renders as-is.
func (c Cell) DisplayValue() string {
	if c.Type == CellTypeCurrency {
		return CurrencySymbol + c.Value
	}
	return c.Value
}
