package report

import (
	"fmt"
	"time"

	"github.com/restobill/backend/internal/domain/entity"
	"github.com/restobill/backend/internal/domain/valueobject"
)

// The builders below flatten report outputs into valueobject.TabularDocument,
// the single structure both the PDF and Excel renderers consume. Summary rows
// and detail rows carry different label sets; renderers detect the label
// change and start a new table.

// BuildDailySalesDocument builds the printable daily sales report.
func BuildDailySalesDocument(out *DailySalesOutput) *valueobject.TabularDocument {
	doc := valueobject.NewTabularDocument(
		fmt.Sprintf("Daily Sales Report - %s", out.Date.Format("2006-01-02")),
	)
	doc.AppendRow(
		valueobject.DateCell("Date", out.Date),
		valueobject.CurrencyCell("Total Sales", out.TotalSales),
		valueobject.IntegerCell("Total Orders", int64(out.TotalOrders)),
	)
	for _, o := range out.Orders {
		appendOrderRow(doc, o)
	}
	return doc
}

// BuildMonthlySalesDocument builds the printable monthly sales report.
func BuildMonthlySalesDocument(out *MonthlySalesOutput) *valueobject.TabularDocument {
	period := time.Date(out.Year, time.Month(out.Month), 1, 0, 0, 0, 0, time.UTC)
	doc := valueobject.NewTabularDocument(
		fmt.Sprintf("Monthly Sales Report - %s", period.Format("January 2006")),
	)
	doc.AppendRow(
		valueobject.TextCell("Month", period.Format("2006-01")),
		valueobject.CurrencyCell("Total Sales", out.TotalSales),
		valueobject.IntegerCell("Total Orders", int64(out.TotalOrders)),
	)
	for _, o := range out.Orders {
		appendOrderRow(doc, o)
	}
	return doc
}

// BuildSalesRangeDocument builds the printable date-range sales report with
// its item-level breakdown.
func BuildSalesRangeDocument(out *SalesRangeOutput) *valueobject.TabularDocument {
	doc := valueobject.NewTabularDocument(
		fmt.Sprintf("Sales Report %s to %s",
			out.StartDate.Format("2006-01-02"), out.EndDate.Format("2006-01-02")),
	)
	doc.AppendRow(
		valueobject.DateCell("Start Date", out.StartDate),
		valueobject.DateCell("End Date", out.EndDate),
		valueobject.CurrencyCell("Total Sales", out.TotalSales),
		valueobject.IntegerCell("Total Orders", int64(out.TotalOrders)),
	)
	for _, item := range out.ItemBreakdown {
		doc.AppendRow(
			valueobject.TextCell("Item", item.Name),
			valueobject.IntegerCell("Quantity Sold", item.Quantity),
			valueobject.CurrencyCell("Revenue", item.Revenue),
		)
	}
	return doc
}

// BuildExpensesDocument builds the printable expenses report.
func BuildExpensesDocument(out *ExpensesRangeOutput) *valueobject.TabularDocument {
	doc := valueobject.NewTabularDocument(
		fmt.Sprintf("Expense Report %s to %s",
			out.StartDate.Format("2006-01-02"), out.EndDate.Format("2006-01-02")),
	)
	doc.AppendRow(
		valueobject.DateCell("Start Date", out.StartDate),
		valueobject.DateCell("End Date", out.EndDate),
		valueobject.CurrencyCell("Total Expenses", out.TotalExpenses),
	)
	for _, e := range out.Expenses {
		doc.AppendRow(
			valueobject.DateCell("Date", e.Date),
			valueobject.TextCell("Description", e.Description),
			valueobject.TextCell("Category", string(e.Category)),
			valueobject.CurrencyCell("Amount", e.Amount),
		)
	}
	return doc
}

// BuildProfitDocument builds the printable profit report.
func BuildProfitDocument(out *ProfitReportOutput) *valueobject.TabularDocument {
	doc := valueobject.NewTabularDocument(
		fmt.Sprintf("Profit Report %s to %s",
			out.StartDate.Format("2006-01-02"), out.EndDate.Format("2006-01-02")),
	)
	doc.AppendRow(
		valueobject.DateCell("Start Date", out.StartDate),
		valueobject.DateCell("End Date", out.EndDate),
		valueobject.CurrencyCell("Total Sales", out.TotalSales),
		valueobject.CurrencyCell("Total Expenses", out.TotalExpenses),
		valueobject.CurrencyCell("Profit", out.Profit),
	)
	return doc
}

// BuildTopItemsDocument builds the printable top selling items report.
func BuildTopItemsDocument(out *TopItemsOutput) *valueobject.TabularDocument {
	doc := valueobject.NewTabularDocument(
		fmt.Sprintf("Top Selling Items %s to %s",
			out.StartDate.Format("2006-01-02"), out.EndDate.Format("2006-01-02")),
	)
	for rank, item := range out.Items {
		doc.AppendRow(
			valueobject.IntegerCell("Rank", int64(rank+1)),
			valueobject.TextCell("Item", item.Name),
			valueobject.IntegerCell("Quantity Sold", item.Quantity),
			valueobject.CurrencyCell("Revenue", item.Revenue),
		)
	}
	return doc
}

func appendOrderRow(doc *valueobject.TabularDocument, o *entity.Order) {
	doc.AppendRow(
		valueobject.TextCell("Order Number", o.OrderNumber),
		valueobject.CurrencyCell("Amount", o.TotalAmount),
		valueobject.TextCell("Status", string(o.Status)),
		valueobject.TextCell("Time", o.CreatedAt.Format("2006-01-02 15:04")),
	)
}
