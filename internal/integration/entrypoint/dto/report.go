package dto

import (
	"github.com/restobill/backend/internal/application/usecase/report"
)

// DailySalesResponse represents the daily sales report response.
type DailySalesResponse struct {
	Date        string          `json:"date"`
	TotalSales  string          `json:"total_sales"`
	TotalOrders int             `json:"total_orders"`
	Orders      []OrderResponse `json:"orders"`
}

// MonthlySalesResponse represents the monthly sales report response.
type MonthlySalesResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	TotalSales  string          `json:"total_sales"`
	TotalOrders int             `json:"total_orders"`
	Orders      []OrderResponse `json:"orders"`
}

// ItemSalesResponse represents one item of a sales breakdown.
type ItemSalesResponse struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Revenue  string `json:"revenue"`
}

// SalesRangeResponse represents the date-range sales report response.
type SalesRangeResponse struct {
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	TotalSales    string              `json:"total_sales"`
	TotalOrders   int                 `json:"total_orders"`
	ItemBreakdown []ItemSalesResponse `json:"item_breakdown"`
}

// ExpensesRangeResponse represents the expenses report response.
type ExpensesRangeResponse struct {
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	TotalExpenses string            `json:"total_expenses"`
	Expenses      []ExpenseResponse `json:"expenses"`
}

// ProfitResponse represents the profit report response.
type ProfitResponse struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TotalSales    string `json:"total_sales"`
	TotalExpenses string `json:"total_expenses"`
	Profit        string `json:"profit"`
}

// TopItemsResponse represents the top selling items response.
type TopItemsResponse struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Items     []ItemSalesResponse `json:"items"`
}

// SummaryResponse represents the dashboard summary response.
type SummaryResponse struct {
	Date          string `json:"date"`
	TodaySales    string `json:"today_sales"`
	TodayOrders   int    `json:"today_orders"`
	MonthSales    string `json:"month_sales"`
	MonthOrders   int    `json:"month_orders"`
	MonthExpenses string `json:"month_expenses"`
	MonthProfit   string `json:"month_profit"`
}

// ToDailySalesResponse converts a DailySalesOutput to a DailySalesResponse DTO.
func ToDailySalesResponse(output *report.DailySalesOutput) DailySalesResponse {
	orders := make([]OrderResponse, len(output.Orders))
	for i, o := range output.Orders {
		orders[i] = ToOrderResponse(o)
	}
	return DailySalesResponse{
		Date:        output.Date.Format("2006-01-02"),
		TotalSales:  output.TotalSales.StringFixed(2),
		TotalOrders: output.TotalOrders,
		Orders:      orders,
	}
}

// ToMonthlySalesResponse converts a MonthlySalesOutput to a MonthlySalesResponse DTO.
func ToMonthlySalesResponse(output *report.MonthlySalesOutput) MonthlySalesResponse {
	orders := make([]OrderResponse, len(output.Orders))
	for i, o := range output.Orders {
		orders[i] = ToOrderResponse(o)
	}
	return MonthlySalesResponse{
		Year:        output.Year,
		Month:       output.Month,
		TotalSales:  output.TotalSales.StringFixed(2),
		TotalOrders: output.TotalOrders,
		Orders:      orders,
	}
}

// ToItemSalesResponses converts item sales rows to DTOs.
func ToItemSalesResponses(items []report.ItemSales) []ItemSalesResponse {
	responses := make([]ItemSalesResponse, len(items))
	for i, item := range items {
		responses[i] = ItemSalesResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Revenue:  item.Revenue.StringFixed(2),
		}
	}
	return responses
}

// ToSalesRangeResponse converts a SalesRangeOutput to a SalesRangeResponse DTO.
func ToSalesRangeResponse(output *report.SalesRangeOutput) SalesRangeResponse {
	return SalesRangeResponse{
		StartDate:     output.StartDate.Format("2006-01-02"),
		EndDate:       output.EndDate.Format("2006-01-02"),
		TotalSales:    output.TotalSales.StringFixed(2),
		TotalOrders:   output.TotalOrders,
		ItemBreakdown: ToItemSalesResponses(output.ItemBreakdown),
	}
}

// ToExpensesRangeResponse converts an ExpensesRangeOutput to an ExpensesRangeResponse DTO.
func ToExpensesRangeResponse(output *report.ExpensesRangeOutput) ExpensesRangeResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ExpensesRangeResponse{
		StartDate:     output.StartDate.Format("2006-01-02"),
		EndDate:       output.EndDate.Format("2006-01-02"),
		TotalExpenses: output.TotalExpenses.StringFixed(2),
		Expenses:      expenses,
	}
}

// ToProfitResponse converts a ProfitReportOutput to a ProfitResponse DTO.
func ToProfitResponse(output *report.ProfitReportOutput) ProfitResponse {
	return ProfitResponse{
		StartDate:     output.StartDate.Format("2006-01-02"),
		EndDate:       output.EndDate.Format("2006-01-02"),
		TotalSales:    output.TotalSales.StringFixed(2),
		TotalExpenses: output.TotalExpenses.StringFixed(2),
		Profit:        output.Profit.StringFixed(2),
	}
}

// ToTopItemsResponse converts a TopItemsOutput to a TopItemsResponse DTO.
func ToTopItemsResponse(output *report.TopItemsOutput) TopItemsResponse {
	return TopItemsResponse{
		StartDate: output.StartDate.Format("2006-01-02"),
		EndDate:   output.EndDate.Format("2006-01-02"),
		Items:     ToItemSalesResponses(output.Items),
	}
}

// ToSummaryResponse converts a SummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *report.SummaryOutput) SummaryResponse {
	return SummaryResponse{
		Date:          output.Date.Format("2006-01-02"),
		TodaySales:    output.TodaySales.StringFixed(2),
		TodayOrders:   output.TodayOrders,
		MonthSales:    output.MonthSales.StringFixed(2),
		MonthOrders:   output.MonthOrders,
		MonthExpenses: output.MonthExpenses.StringFixed(2),
		MonthProfit:   output.MonthProfit.StringFixed(2),
	}
}
