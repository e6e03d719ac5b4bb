package dto

import (
	"github.com/restobill/backend/internal/domain/entity"
)

// CreateMenuItemRequest represents the request to create a menu item.
type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       string  `json:"price" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	IsAvailable *bool   `json:"is_available"`
}

// UpdateMenuItemRequest represents the request to update a menu item.
// Absent fields keep their current values.
type UpdateMenuItemRequest struct {
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsAvailable *bool   `json:"is_available"`
}

// MenuItemResponse represents a menu item in API responses.
type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// MenuListResponse represents the menu listing response.
type MenuListResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// ToMenuItemResponse converts a MenuItem entity to a MenuItemResponse DTO.
func ToMenuItemResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Price:       item.Price.StringFixed(2),
		Description: item.Description,
		Category:    item.Category,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   item.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToMenuListResponse converts menu item entities to a MenuListResponse DTO.
func ToMenuListResponse(items []*entity.MenuItem) MenuListResponse {
	responses := make([]MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToMenuItemResponse(item)
	}
	return MenuListResponse{Items: responses}
}
