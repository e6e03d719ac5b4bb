package dto

import (
	"github.com/restobill/backend/internal/application/usecase/cart"
)

// AddCartItemRequest represents the request to add an item to the cart.
type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request to change a cart line quantity.
// A quantity of zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartFailureResponse represents a failed cart operation. Cart endpoints
// report failures in the same success/message envelope as mutations, not as
// a bare error body.
type CartFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// CartMutationResponse represents the response to a cart mutation.
type CartMutationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CartCount int    `json:"cart_count"`
	Total     string `json:"total"`
}

// CartLineResponse represents one cart line in API responses.
type CartLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	Subtotal   string `json:"subtotal"`
}

// CartResponse represents the full cart contents.
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	CartCount int                `json:"cart_count"`
	Total     string             `json:"total"`
}

// ToCartResponse converts a GetCartOutput to a CartResponse DTO.
func ToCartResponse(output *cart.GetCartOutput) CartResponse {
	lines := make([]CartLineResponse, len(output.Lines))
	for i, line := range output.Lines {
		lines[i] = CartLineResponse{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			UnitPrice:  line.UnitPrice.StringFixed(2),
			Quantity:   line.Quantity,
			Subtotal:   line.Subtotal().StringFixed(2),
		}
	}
	return CartResponse{
		Lines:     lines,
		CartCount: output.CartCount,
		Total:     output.Total.StringFixed(2),
	}
}
