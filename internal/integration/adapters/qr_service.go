package adapters

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	"github.com/restobill/backend/internal/domain/valueobject"
)

// qrImageSize is the side length in pixels of the generated QR image.
const qrImageSize = 256

// qrService implements the adapter.QRService interface using skip2/go-qrcode.
type qrService struct{}

// NewQRService creates a new QR service instance.
func NewQRService() adapter.QRService {
	return &qrService{}
}

// GenerateBillQR returns a PNG QR image embedding a plain-text rendering of
// the bill, so any phone camera can read the order details without an app.
func (s *qrService) GenerateBillQR(order *entity.Order) ([]byte, error) {
	payload := BillPayload(order)

	png, err := qrcode.Encode(payload, qrcode.Low, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bill qr: %w", err)
	}
	return png, nil
}

// BillPayload renders the human-readable bill text embedded in the QR image.
func BillPayload(order *entity.Order) string {
	var b strings.Builder

	b.WriteString("Order Details\n")
	fmt.Fprintf(&b, "Order Number: %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(string(order.Status)))

	b.WriteString("\nItems:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d @ %s%s = %s%s\n",
			item.MenuItemName,
			item.Quantity,
			valueobject.CurrencySymbol, item.UnitPrice.StringFixed(2),
			valueobject.CurrencySymbol, item.Subtotal().StringFixed(2),
		)
	}

	fmt.Fprintf(&b, "\nTotal Amount: %s%s",
		valueobject.CurrencySymbol, order.TotalAmount.StringFixed(2))

	return b.String()
}
