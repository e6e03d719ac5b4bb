package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/usecase/menu"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/entrypoint/dto"
)

// MenuController handles menu management endpoints.
type MenuController struct {
	createUseCase *menu.CreateMenuItemUseCase
	listUseCase   *menu.ListMenuItemsUseCase
	updateUseCase *menu.UpdateMenuItemUseCase
	deleteUseCase *menu.DeleteMenuItemUseCase
	toggleUseCase *menu.ToggleAvailabilityUseCase
}

// NewMenuController creates a new menu controller instance.
func NewMenuController(
	createUseCase *menu.CreateMenuItemUseCase,
	listUseCase *menu.ListMenuItemsUseCase,
	updateUseCase *menu.UpdateMenuItemUseCase,
	deleteUseCase *menu.DeleteMenuItemUseCase,
	toggleUseCase *menu.ToggleAvailabilityUseCase,
) *MenuController {
	return &MenuController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// Create handles POST /admin/menu requests.
func (c *MenuController) Create(ctx *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "name and price are required",
		})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid price format",
			Code:  string(domainerror.ErrCodeInvalidMenuItemPrice),
		})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), menu.CreateMenuItemInput{
		Name:        req.Name,
		Price:       price,
		Description: req.Description,
		Category:    req.Category,
		IsAvailable: isAvailable,
	})
	if err != nil {
		handleMenuError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMenuItemResponse(output.MenuItem))
}

// List handles GET /menu requests. The available query flag restricts the
// listing to items the cashier can sell right now.
func (c *MenuController) List(ctx *gin.Context) {
	availableOnly := ctx.Query("available") == "true"

	output, err := c.listUseCase.Execute(ctx.Request.Context(), menu.ListMenuItemsInput{
		AvailableOnly: availableOnly,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list menu items",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuListResponse(output.MenuItems))
}

// Update handles PATCH /admin/menu/:id requests.
func (c *MenuController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := menu.UpdateMenuItemInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid price format",
				Code:  string(domainerror.ErrCodeInvalidMenuItemPrice),
			})
			return
		}
		input.Price = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleMenuError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuItemResponse(output.MenuItem))
}

// Delete handles DELETE /admin/menu/:id requests. Items referenced by historical
// orders cannot be deleted, only made unavailable.
func (c *MenuController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), menu.DeleteMenuItemInput{ID: id}); err != nil {
		handleMenuError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Menu item deleted",
	})
}

// ToggleAvailability handles PATCH /admin/menu/:id/availability requests.
func (c *MenuController) ToggleAvailability(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), menu.ToggleAvailabilityInput{ID: id})
	if err != nil {
		handleMenuError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuItemResponse(output.MenuItem))
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleMenuError maps menu domain errors to HTTP responses.
func handleMenuError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrMenuItemNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Menu item not found",
			Code:  string(domainerror.ErrCodeMenuItemNotFound),
		})
	case errors.Is(err, domainerror.ErrMenuItemInUse):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Menu item is referenced by existing orders; mark it unavailable instead",
			Code:  string(domainerror.ErrCodeMenuItemInUse),
		})
	case errors.Is(err, domainerror.ErrMenuItemNameRequired):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Menu item name is required",
			Code:  string(domainerror.ErrCodeMenuItemNameRequired),
		})
	case errors.Is(err, domainerror.ErrInvalidMenuItemPrice):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Menu item price must not be negative",
			Code:  string(domainerror.ErrCodeInvalidMenuItemPrice),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process menu item",
		})
	}
}
