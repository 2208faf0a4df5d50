package catalog

import (
	"github.com/prodsub/prodsub/internal/catalog/products"
	"github.com/prodsub/prodsub/internal/catalog/users"
)

// Error classification across both stores, used by the HTTP layer to pick
// status codes: not found -> 404, conflict -> 409, validation -> 400.

// IsNotFound reports whether err is a missing user, edge, or product
func IsNotFound(err error) bool {
	return users.IsNotFound(err) || products.IsNotFound(err)
}

// IsConflict reports whether err is a duplicate subscription edge
func IsConflict(err error) bool {
	return users.IsConflict(err)
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	return users.IsValidation(err) || products.IsValidation(err)
}
