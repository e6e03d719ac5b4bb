// Package error defines domain-specific errors for the RestoBill application.
package error

import "errors"

// Menu domain errors.
var (
	// ErrMenuItemNotFound is returned when a menu item is not found in the system.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrMenuItemUnavailable is returned when a menu item is not currently available.
	ErrMenuItemUnavailable = errors.New("menu item is not available")

	// ErrMenuItemInUse is returned when deleting a menu item that historical order items reference.
	ErrMenuItemInUse = errors.New("menu item is referenced by existing orders")

	// ErrMenuItemNameRequired is returned when the menu item name is empty.
	ErrMenuItemNameRequired = errors.New("menu item name is required")

	// ErrInvalidMenuItemPrice is returned when the price is negative.
	ErrInvalidMenuItemPrice = errors.New("menu item price must not be negative")
)

// MenuErrorCode defines error codes for menu errors.
// Format: MNU-XXYYYY where XX is category and YYYY is specific error.
type MenuErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMenuItemNameRequired MenuErrorCode = "MNU-010001"
	ErrCodeInvalidMenuItemPrice MenuErrorCode = "MNU-010002"
	ErrCodeMenuItemNotFound     MenuErrorCode = "MNU-010003"
	ErrCodeMenuItemUnavailable  MenuErrorCode = "MNU-010004"

	// State errors (02XXXX)
	ErrCodeMenuItemInUse MenuErrorCode = "MNU-020001"
)

// MenuError represents a menu error with code and message.
type MenuError struct {
	Code    MenuErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MenuError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MenuError) Unwrap() error {
	return e.Err
}

// NewMenuError creates a new MenuError with the given code and message.
func NewMenuError(code MenuErrorCode, message string, err error) *MenuError {
	return &MenuError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
