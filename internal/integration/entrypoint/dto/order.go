package dto

import (
	"github.com/restobill/backend/internal/domain/entity"
)

// OrderItemResponse represents one order line in API responses.
type OrderItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	TotalAmount string              `json:"total_amount"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   string              `json:"created_at"`
}

// ToOrderResponse converts an Order entity to an OrderResponse DTO.
func ToOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.MenuItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.StringFixed(2),
			Subtotal:   item.Subtotal().StringFixed(2),
		}
	}
	return OrderResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Status:      string(order.Status),
		Items:       items,
		CreatedAt:   order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
