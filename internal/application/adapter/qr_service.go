package adapter

import (
	"github.com/restobill/backend/internal/domain/entity"
)

// QRService encodes an order's bill into a scannable image.
type QRService interface {
	// GenerateBillQR returns a PNG QR image embedding the bill details.
	GenerateBillQR(order *entity.Order) ([]byte, error)
}
