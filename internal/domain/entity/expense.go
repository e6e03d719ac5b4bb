package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense.
type ExpenseCategory string

const (
	ExpenseCategoryIngredients ExpenseCategory = "ingredients"
	ExpenseCategoryStaff       ExpenseCategory = "staff"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategoryRent        ExpenseCategory = "rent"
	ExpenseCategoryEquipment   ExpenseCategory = "equipment"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

// IsValidExpenseCategory reports whether the given category is one of the
// known expense categories.
func IsValidExpenseCategory(category ExpenseCategory) bool {
	switch category {
	case ExpenseCategoryIngredients, ExpenseCategoryStaff, ExpenseCategoryUtilities,
		ExpenseCategoryRent, ExpenseCategoryEquipment, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense represents a single back-office expense record. Expenses are
// independent of orders; profit is always derived as sales minus expenses.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    ExpenseCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(date time.Time, description string, amount decimal.Decimal, category ExpenseCategory) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
