package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/application/usecase/order"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/entrypoint/dto"
)

// OrderController handles order endpoints.
type OrderController struct {
	createUseCase   *order.CreateOrderUseCase
	markPaidUseCase *order.MarkPaidUseCase
	getUseCase      *order.GetOrderUseCase
	qrService       adapter.QRService
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	createUseCase *order.CreateOrderUseCase,
	markPaidUseCase *order.MarkPaidUseCase,
	getUseCase *order.GetOrderUseCase,
	qrService adapter.QRService,
) *OrderController {
	return &OrderController{
		createUseCase:   createUseCase,
		markPaidUseCase: markPaidUseCase,
		getUseCase:      getUseCase,
		qrService:       qrService,
	}
}

// Create handles POST /orders requests. The current session cart becomes a
// pending order; the cart is emptied only if the order write succeeds.
func (c *OrderController) Create(ctx *gin.Context) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), order.CreateOrderInput{
		SessionID: sessionID,
	})
	if err != nil {
		handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order))
}

// Get handles GET /orders/:id requests.
func (c *OrderController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), order.GetOrderInput{OrderID: id})
	if err != nil {
		handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// MarkPaid handles POST /orders/:id/pay requests. Paying an already paid or
// cancelled order is a no-op that returns the order unchanged.
func (c *OrderController) MarkPaid(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), order.MarkPaidInput{OrderID: id})
	if err != nil {
		handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// BillQR handles GET /orders/:id/qr requests. It streams a PNG QR image
// embedding the bill details.
func (c *OrderController) BillQR(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), order.GetOrderInput{OrderID: id})
	if err != nil {
		handleOrderError(ctx, err)
		return
	}

	png, err := c.qrService.GenerateBillQR(output.Order)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate bill QR",
		})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// handleOrderError maps order domain errors to HTTP responses.
func handleOrderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Order not found",
			Code:  string(domainerror.ErrCodeOrderNotFound),
		})
	case errors.Is(err, domainerror.ErrCartEmpty):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Cart is empty",
			Code:  string(domainerror.ErrCodeCartEmpty),
		})
	case errors.Is(err, domainerror.ErrMenuItemNotFound):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "A cart item no longer exists on the menu",
			Code:  string(domainerror.ErrCodeMenuItemNotFound),
		})
	case errors.Is(err, domainerror.ErrOrderNumberCollision):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to allocate an order number, please retry",
			Code:  string(domainerror.ErrCodeOrderNumberCollision),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process order",
		})
	}
}
