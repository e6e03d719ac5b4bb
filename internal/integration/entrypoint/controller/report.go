package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/application/usecase/report"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/domain/valueobject"
	"github.com/restobill/backend/internal/integration/entrypoint/dto"
)

// ReportController handles back-office report endpoints.
type ReportController struct {
	dailyUseCase    *report.DailySalesUseCase
	monthlyUseCase  *report.MonthlySalesUseCase
	salesUseCase    *report.SalesRangeUseCase
	expensesUseCase *report.ExpensesRangeUseCase
	profitUseCase   *report.ProfitReportUseCase
	topItemsUseCase *report.TopItemsUseCase
	summaryUseCase  *report.SummaryUseCase
	renderers       map[string]adapter.DocumentRenderer
	exportCache     adapter.ReportCache
	exportCacheTTL  time.Duration
}

// NewReportController creates a new report controller instance. The renderers
// map is keyed by export format ("pdf", "xlsx"). exportCacheTTL bounds how
// long a rendered report artifact is served from cache before being
// re-rendered.
func NewReportController(
	dailyUseCase *report.DailySalesUseCase,
	monthlyUseCase *report.MonthlySalesUseCase,
	salesUseCase *report.SalesRangeUseCase,
	expensesUseCase *report.ExpensesRangeUseCase,
	profitUseCase *report.ProfitReportUseCase,
	topItemsUseCase *report.TopItemsUseCase,
	summaryUseCase *report.SummaryUseCase,
	renderers map[string]adapter.DocumentRenderer,
	exportCache adapter.ReportCache,
	exportCacheTTL time.Duration,
) *ReportController {
	return &ReportController{
		dailyUseCase:    dailyUseCase,
		monthlyUseCase:  monthlyUseCase,
		salesUseCase:    salesUseCase,
		expensesUseCase: expensesUseCase,
		profitUseCase:   profitUseCase,
		topItemsUseCase: topItemsUseCase,
		summaryUseCase:  summaryUseCase,
		renderers:       renderers,
		exportCache:     exportCache,
		exportCacheTTL:  exportCacheTTL,
	}
}

// Summary handles GET /admin/reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.SummaryInput{Scope: scope})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Daily handles GET /admin/reports/daily requests. The date query param
// defaults to today.
func (c *ReportController) Daily(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badDateFormat(ctx, "date")
			return
		}
		date = parsed
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.DailySalesInput{
		Date:  date,
		Scope: scope,
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySalesResponse(output))
}

// Monthly handles GET /admin/reports/monthly requests. Year and month default
// to the current month.
func (c *ReportController) Monthly(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	input, ok := parseMonthlyInput(ctx)
	if !ok {
		return
	}
	input.Scope = scope

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySalesResponse(output))
}

// Sales handles GET /admin/reports/sales requests.
func (c *ReportController) Sales(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	start, end, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.salesUseCase.Execute(ctx.Request.Context(), report.SalesRangeInput{
		StartDate: start,
		EndDate:   end,
		Scope:     scope,
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesRangeResponse(output))
}

// Expenses handles GET /admin/reports/expenses requests.
func (c *ReportController) Expenses(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	start, end, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.expensesUseCase.Execute(ctx.Request.Context(), report.ExpensesRangeInput{
		StartDate: start,
		EndDate:   end,
		Scope:     scope,
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpensesRangeResponse(output))
}

// Profit handles GET /admin/reports/profit requests.
func (c *ReportController) Profit(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	start, end, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.profitUseCase.Execute(ctx.Request.Context(), report.ProfitReportInput{
		StartDate: start,
		EndDate:   end,
		Scope:     scope,
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitResponse(output))
}

// TopItems handles GET /admin/reports/top-items requests. Exactly one of the
// days and months query params must be given.
func (c *ReportController) TopItems(ctx *gin.Context) {
	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	input := report.TopItemsInput{Scope: scope}
	if raw := ctx.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			badWindow(ctx)
			return
		}
		input.Days = days
	}
	if raw := ctx.Query("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			badWindow(ctx)
			return
		}
		input.Months = months
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a positive integer",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.topItemsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopItemsResponse(output))
}

// Export handles GET /admin/reports/:kind/export requests. Rendered bytes are
// cached in Redis keyed by kind, range, floor and format; the aggregation
// itself is recomputed only on a cache miss.
func (c *ReportController) Export(ctx *gin.Context) {
	kind := ctx.Param("kind")

	format := ctx.DefaultQuery("format", "pdf")
	renderer, ok := c.renderers[format]
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Export format must be pdf or xlsx",
			Code:  string(domainerror.ErrCodeInvalidExportFormat),
		})
		return
	}

	scope, ok := parseScope(ctx)
	if !ok {
		return
	}

	doc, rangeLabel, ok := c.buildExportDocument(ctx, kind, scope)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("%s|%s|%s|%s", kind, rangeLabel, scopeLabel(scope), format)
	payload, hit, err := c.exportCache.Get(ctx.Request.Context(), cacheKey)
	if err != nil || !hit {
		payload, err = renderer.Render(doc)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to render report",
				Code:  string(domainerror.ErrCodeReportInternalError),
			})
			return
		}
		// Best effort: a failed cache write never fails the download.
		_ = c.exportCache.Set(ctx.Request.Context(), cacheKey, payload, c.exportCacheTTL)
	}

	filename := fmt.Sprintf("%s_%s.%s", kind, rangeLabel, renderer.FileExtension())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, renderer.ContentType(), payload)
}

// buildExportDocument aggregates the requested report kind and flattens it
// into a tabular document plus the filename range label.
func (c *ReportController) buildExportDocument(ctx *gin.Context, kind string, scope report.Scope) (*valueobject.TabularDocument, string, bool) {
	reqCtx := ctx.Request.Context()

	switch kind {
	case "daily":
		date := time.Now().UTC()
		if raw := ctx.Query("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				badDateFormat(ctx, "date")
				return nil, "", false
			}
			date = parsed
		}
		output, err := c.dailyUseCase.Execute(reqCtx, report.DailySalesInput{Date: date, Scope: scope})
		if err != nil {
			handleReportError(ctx, err)
			return nil, "", false
		}
		return report.BuildDailySalesDocument(output), output.Date.Format("2006-01-02"), true

	case "monthly":
		input, ok := parseMonthlyInput(ctx)
		if !ok {
			return nil, "", false
		}
		input.Scope = scope
		output, err := c.monthlyUseCase.Execute(reqCtx, input)
		if err != nil {
			handleReportError(ctx, err)
			return nil, "", false
		}
		return report.BuildMonthlySalesDocument(output), fmt.Sprintf("%04d-%02d", output.Year, output.Month), true

	case "expenses":
		start, end, ok := parseDateRange(ctx)
		if !ok {
			return nil, "", false
		}
		output, err := c.expensesUseCase.Execute(reqCtx, report.ExpensesRangeInput{
			StartDate: start,
			EndDate:   end,
			Scope:     scope,
		})
		if err != nil {
			handleReportError(ctx, err)
			return nil, "", false
		}
		return report.BuildExpensesDocument(output), rangeLabel(output.StartDate, output.EndDate), true

	case "profit":
		start, end, ok := parseDateRange(ctx)
		if !ok {
			return nil, "", false
		}
		output, err := c.profitUseCase.Execute(reqCtx, report.ProfitReportInput{
			StartDate: start,
			EndDate:   end,
			Scope:     scope,
		})
		if err != nil {
			handleReportError(ctx, err)
			return nil, "", false
		}
		return report.BuildProfitDocument(output), rangeLabel(output.StartDate, output.EndDate), true

	default:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Unknown report kind",
		})
		return nil, "", false
	}
}

// parseScope reads the optional floor query param into a report scope.
func parseScope(ctx *gin.Context) (report.Scope, bool) {
	raw := ctx.Query("floor")
	if raw == "" {
		return report.Scope{}, true
	}
	floor, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid floor format, expected RFC3339",
		})
		return report.Scope{}, false
	}
	return report.Scope{Floor: &floor}, true
}

// parseDateRange reads the required start_date and end_date query params.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	startRaw := ctx.Query("start_date")
	if startRaw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return time.Time{}, time.Time{}, false
	}
	endRaw := ctx.Query("end_date")
	if endRaw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		badDateFormat(ctx, "start_date")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		badDateFormat(ctx, "end_date")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// parseMonthlyInput reads year and month query params, defaulting to the
// current month.
func parseMonthlyInput(ctx *gin.Context) (report.MonthlySalesInput, bool) {
	now := time.Now().UTC()
	input := report.MonthlySalesInput{Year: now.Year(), Month: int(now.Month())}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year must be an integer",
			})
			return input, false
		}
		input.Year = year
	}
	if raw := ctx.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "month must be an integer",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return input, false
		}
		input.Month = month
	}
	return input, true
}

func rangeLabel(start, end time.Time) string {
	return start.Format("2006-01-02") + "_" + end.Format("2006-01-02")
}

func scopeLabel(scope report.Scope) string {
	if scope.Floor == nil {
		return "all"
	}
	return scope.Floor.UTC().Format(time.RFC3339)
}

func badDateFormat(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: fmt.Sprintf("Invalid %s format, expected YYYY-MM-DD", field),
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}

func badWindow(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Window must be a positive number of days or months",
		Code:  string(domainerror.ErrCodeInvalidWindow),
	})
}

// handleReportError maps report domain errors to HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrInvalidDateRange):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date must not be before start_date",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
	case errors.Is(err, domainerror.ErrInvalidMonth):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Month must be between 1 and 12",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
	case errors.Is(err, domainerror.ErrInvalidWindow):
		badWindow(ctx)
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build report",
			Code:  string(domainerror.ErrCodeReportInternalError),
		})
	}
}
