package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/usecase/expense"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense tracking endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date, description, amount and category are required",
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Date:        date,
		Description: req.Description,
		Amount:      amount,
		Category:    entity.ExpenseCategory(req.Category),
	})
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests with optional start_date, end_date and
// category query filters.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{}

	if raw := ctx.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.StartDate = &start
	}
	if raw := ctx.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.EndDate = &end
	}
	if raw := ctx.Query("category"); raw != "" {
		category := entity.ExpenseCategory(raw)
		if !entity.IsValidExpenseCategory(category) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid expense category",
				Code:  string(domainerror.ErrCodeInvalidExpenseCategory),
			})
			return
		}
		input.Category = &category
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ID:          id,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.Date = &date
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
			})
			return
		}
		input.Amount = &amount
	}
	if req.Category != nil {
		category := entity.ExpenseCategory(*req.Category)
		input.Category = &category
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ID: id}); err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Expense deleted",
	})
}

// handleExpenseError maps expense domain errors to HTTP responses.
func handleExpenseError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
	case errors.Is(err, domainerror.ErrExpenseDescriptionRequired):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Expense description is required",
			Code:  string(domainerror.ErrCodeExpenseDescriptionRequired),
		})
	case errors.Is(err, domainerror.ErrInvalidExpenseAmount):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Expense amount must not be negative",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
	case errors.Is(err, domainerror.ErrInvalidExpenseCategory):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense category",
			Code:  string(domainerror.ErrCodeInvalidExpenseCategory),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process expense",
		})
	}
}
