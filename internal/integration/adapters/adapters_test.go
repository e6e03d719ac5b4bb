package adapters

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

func TestPasswordServiceRoundTrip(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.NoError(t, service.VerifyPassword(hash, "secret123"))
	assert.Error(t, service.VerifyPassword(hash, "wrong"))
}

func TestPasswordServiceHashesAreSalted(t *testing.T) {
	service := NewPasswordService()

	first, err := service.HashPassword("secret123")
	require.NoError(t, err)
	second, err := service.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenServiceRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	adminID := uuid.New()

	token, err := service.GenerateAccessToken(adminID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerror.ErrExpiredToken))
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	_, err := service.ValidateAccessToken("not-a-token")
	assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
}

func billOrder(t *testing.T) *entity.Order {
	t.Helper()

	idly := entity.NewMenuItem("Idly", decimal.NewFromInt(15), "", "breakfast", true)
	vada := entity.NewMenuItem("Vada", decimal.NewFromInt(20), "", "breakfast", true)
	items := []*entity.OrderItem{
		entity.NewOrderItem(idly.ID, idly.Name, 2, idly.Price),
		entity.NewOrderItem(vada.ID, vada.Name, 2, vada.Price),
	}
	order := entity.NewOrder("ORD-20240309-DEADBEEF", decimal.NewFromInt(70), items)
	order.Status = entity.OrderStatusPaid
	order.CreatedAt = time.Date(2024, 3, 9, 13, 45, 30, 0, time.UTC)
	return order
}

func TestBillPayloadText(t *testing.T) {
	payload := BillPayload(billOrder(t))

	assert.True(t, strings.HasPrefix(payload, "Order Details\n"))
	assert.Contains(t, payload, "Order Number: ORD-20240309-DEADBEEF")
	assert.Contains(t, payload, "Date: 2024-03-09 13:45:30")
	assert.Contains(t, payload, "Status: PAID")
	assert.Contains(t, payload, "- Idly x2 @ ₹15.00 = ₹30.00")
	assert.Contains(t, payload, "- Vada x2 @ ₹20.00 = ₹40.00")
	assert.True(t, strings.HasSuffix(payload, "Total Amount: ₹70.00"))
}

func TestGenerateBillQRProducesPNG(t *testing.T) {
	service := NewQRService()

	png, err := service.GenerateBillQR(billOrder(t))
	require.NoError(t, err)

	// PNG magic bytes.
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
