package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/usecase/cart"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/entrypoint/dto"
	"github.com/restobill/backend/internal/integration/entrypoint/middleware"
)

// CartController handles session cart endpoints.
type CartController struct {
	addUseCase    *cart.AddItemUseCase
	updateUseCase *cart.UpdateItemUseCase
	removeUseCase *cart.RemoveItemUseCase
	getUseCase    *cart.GetCartUseCase
	clearUseCase  *cart.ClearCartUseCase
}

// NewCartController creates a new cart controller instance.
func NewCartController(
	addUseCase *cart.AddItemUseCase,
	updateUseCase *cart.UpdateItemUseCase,
	removeUseCase *cart.RemoveItemUseCase,
	getUseCase *cart.GetCartUseCase,
	clearUseCase *cart.ClearCartUseCase,
) *CartController {
	return &CartController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
		getUseCase:    getUseCase,
		clearUseCase:  clearUseCase,
	}
}

// Add handles POST /cart/items requests.
func (c *CartController) Add(ctx *gin.Context) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		cartFailure(ctx, http.StatusBadRequest, "menu_item_id is required", "")
		return
	}

	menuItemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		cartFailure(ctx, http.StatusBadRequest, "Invalid menu_item_id format", "")
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), cart.AddItemInput{
		SessionID:  sessionID,
		MenuItemID: menuItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		handleCartError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartMutationResponse{
		Success:   true,
		Message:   fmt.Sprintf("%s added to cart", output.ItemName),
		CartCount: output.CartCount,
		Total:     output.Total.StringFixed(2),
	})
}

// Update handles PATCH /cart/items/:menuItemId requests.
func (c *CartController) Update(ctx *gin.Context) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	menuItemID, ok := parseMenuItemParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		cartFailure(ctx, http.StatusBadRequest, "quantity is required", "")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), cart.UpdateItemInput{
		SessionID:  sessionID,
		MenuItemID: menuItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		handleCartError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartMutationResponse{
		Success:   true,
		Message:   "Cart updated",
		CartCount: output.CartCount,
		Total:     output.Total.StringFixed(2),
	})
}

// Remove handles DELETE /cart/items/:menuItemId requests.
func (c *CartController) Remove(ctx *gin.Context) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	menuItemID, ok := parseMenuItemParam(ctx)
	if !ok {
		return
	}

	output, err := c.removeUseCase.Execute(ctx.Request.Context(), cart.RemoveItemInput{
		SessionID:  sessionID,
		MenuItemID: menuItemID,
	})
	if err != nil {
		handleCartError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CartMutationResponse{
		Success:   true,
		Message:   "Item removed from cart",
		CartCount: output.CartCount,
		Total:     output.Total.StringFixed(2),
	})
}

// Get handles GET /cart requests.
func (c *CartController) Get(ctx *gin.Context) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), cart.GetCartInput{
		SessionID: sessionID,
	})
	if err != nil {
		cartFailure(ctx, http.StatusInternalServerError, "Failed to load cart", "")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(output))
}

// Clear handles DELETE /cart requests.
func (c *CartController) Clear(ctx *gin.Context) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), cart.ClearCartInput{SessionID: sessionID}); err != nil {
		cartFailure(ctx, http.StatusInternalServerError, "Failed to clear cart", "")
		return
	}

	ctx.JSON(http.StatusOK, dto.CartMutationResponse{
		Success:   true,
		Message:   "Cart cleared",
		CartCount: 0,
		Total:     "0.00",
	})
}

// requireSession extracts the session ID attached by the session middleware.
func requireSession(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		cartFailure(ctx, http.StatusInternalServerError, "Session not initialized", "")
		return uuid.Nil, false
	}
	return sessionID, true
}

// parseMenuItemParam parses the :menuItemId path parameter as a UUID.
func parseMenuItemParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("menuItemId"))
	if err != nil {
		cartFailure(ctx, http.StatusBadRequest, "Invalid menu item id format", "")
		return uuid.Nil, false
	}
	return id, true
}

// cartFailure writes a failed cart operation. Cart endpoints answer in the
// same success/message envelope on failure as on success.
func cartFailure(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.CartFailureResponse{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// handleCartError maps cart domain errors to HTTP responses.
func handleCartError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrMenuItemNotFound):
		cartFailure(ctx, http.StatusNotFound, "Menu item not found", string(domainerror.ErrCodeMenuItemNotFound))
	case errors.Is(err, domainerror.ErrMenuItemUnavailable):
		cartFailure(ctx, http.StatusConflict, "Menu item is not available", string(domainerror.ErrCodeMenuItemUnavailable))
	case errors.Is(err, domainerror.ErrCartItemNotFound):
		cartFailure(ctx, http.StatusNotFound, "Item is not in the cart", string(domainerror.ErrCodeCartItemNotFound))
	case errors.Is(err, domainerror.ErrInvalidQuantity):
		cartFailure(ctx, http.StatusBadRequest, "Quantity must be at least 1", string(domainerror.ErrCodeInvalidQuantity))
	default:
		cartFailure(ctx, http.StatusInternalServerError, "Failed to process cart", "")
	}
}
