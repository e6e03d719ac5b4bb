package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyCellKeepsTrailingZeros(t *testing.T) {
	amount, _ := decimal.NewFromString("1234.5")
	cell := CurrencyCell("Total Sales", amount)

	assert.Equal(t, "1234.50", cell.Value)
	assert.Equal(t, CurrencySymbol+"1234.50", cell.DisplayValue())
}

func TestNonCurrencyCellsRenderAsIs(t *testing.T) {
	assert.Equal(t, "7", IntegerCell("Total Orders", 7).DisplayValue())
	assert.Equal(t, "idly", TextCell("Item", "idly").DisplayValue())

	date := time.Date(2024, 3, 9, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-09", DateCell("Date", date).DisplayValue())
}

func TestRowSameShape(t *testing.T) {
	summary := Row{Cells: []Cell{
		DateCell("Date", time.Now()),
		CurrencyCell("Total Sales", decimal.Zero),
	}}
	other := Row{Cells: []Cell{
		DateCell("Date", time.Now()),
		CurrencyCell("Total Sales", decimal.NewFromInt(5)),
	}}
	detail := Row{Cells: []Cell{
		TextCell("Order Number", "ORD-1"),
		CurrencyCell("Amount", decimal.Zero),
	}}

	assert.True(t, summary.SameShape(other))
	assert.False(t, summary.SameShape(detail))
	assert.Equal(t, []string{"Date", "Total Sales"}, summary.Labels())
}

func TestAppendRow(t *testing.T) {
	doc := NewTabularDocument("Daily Sales Report - 2024-03-09")
	doc.AppendRow(TextCell("Order Number", "ORD-1"), CurrencyCell("Amount", decimal.NewFromInt(70)))

	assert.Len(t, doc.Rows, 1)
	assert.Equal(t, "ORD-1", doc.Rows[0].Cells[0].Value)
}
