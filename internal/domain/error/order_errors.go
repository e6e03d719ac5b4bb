package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order is not found in the system.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNumberCollision is returned when order-number generation collides twice in a row.
	ErrOrderNumberCollision = errors.New("order number collision")
)

// OrderErrorCode defines error codes for order errors.
// Format: ORD-XXYYYY where XX is category and YYYY is specific error.
type OrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeOrderNotFound OrderErrorCode = "ORD-010001"

	// Internal errors (99XXXX)
	ErrCodeOrderNumberCollision OrderErrorCode = "ORD-990001"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
