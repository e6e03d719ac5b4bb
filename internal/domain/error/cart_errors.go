package error

import "errors"

// Cart domain errors.
var (
	// ErrCartEmpty is returned when creating an order from a cart with no lines.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrCartItemNotFound is returned when updating or removing a line that is not in the cart.
	ErrCartItemNotFound = errors.New("item not found in cart")

	// ErrInvalidQuantity is returned when a quantity below one is provided.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// CartErrorCode defines error codes for cart errors.
// Format: CRT-XXYYYY where XX is category and YYYY is specific error.
type CartErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCartEmpty        CartErrorCode = "CRT-010001"
	ErrCodeCartItemNotFound CartErrorCode = "CRT-010002"
	ErrCodeInvalidQuantity  CartErrorCode = "CRT-010003"
)

// CartError represents a cart error with code and message.
type CartError struct {
	Code    CartErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CartError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CartError) Unwrap() error {
	return e.Err
}

// NewCartError creates a new CartError with the given code and message.
func NewCartError(code CartErrorCode, message string, err error) *CartError {
	return &CartError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
