package dto

import (
	"github.com/restobill/backend/internal/application/usecase/expense"
	"github.com/restobill/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request to create an expense.
type CreateExpenseRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// UpdateExpenseRequest represents the request to update an expense.
// Absent fields keep their current values.
type UpdateExpenseRequest struct {
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
}

// ExpenseListResponse represents the expense listing response.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Category:    string(e.Category),
		CreatedAt:   e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: responses,
		Total:    output.Total.StringFixed(2),
	}
}
