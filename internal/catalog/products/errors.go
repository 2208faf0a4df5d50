package products

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ProductError represents errors related to product operations
type ProductError struct {
	Type      string
	ProductID uuid.UUID
	Message   string
	Cause     error
}

func (e *ProductError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("product error [%s] for product %s: %s (caused by: %v)", e.Type, e.ProductID, e.Message, e.Cause)
	}
	return fmt.Sprintf("product error [%s] for product %s: %s", e.Type, e.ProductID, e.Message)
}

func (e *ProductError) Unwrap() error {
	return e.Cause
}

// Product error types
const (
	ProductErrorTypeNotFound         = "not_found"
	ProductErrorTypeValidationFailed = "validation_failed"
)

// NewProductNotFoundError creates an error for when a product is not found
func NewProductNotFoundError(productID uuid.UUID) *ProductError {
	return &ProductError{
		Type:      ProductErrorTypeNotFound,
		ProductID: productID,
		Message:   "product not found",
	}
}

// NewProductValidationError creates an error for product validation failures
func NewProductValidationError(message string) *ProductError {
	return &ProductError{
		Type:    ProductErrorTypeValidationFailed,
		Message: message,
	}
}

// IsNotFound reports whether err is a missing product
func IsNotFound(err error) bool {
	var productErr *ProductError
	if errors.As(err, &productErr) {
		return productErr.Type == ProductErrorTypeNotFound
	}
	return false
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var productErr *ProductError
	if errors.As(err, &productErr) {
		return productErr.Type == ProductErrorTypeValidationFailed
	}
	return false
}
