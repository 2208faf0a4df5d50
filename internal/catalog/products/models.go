package products

import (
	"github.com/google/uuid"
)

// Product represents a catalog item attributed to a single creator user
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatorID uuid.UUID `json:"creator_id"`
	Price     float64   `json:"price"`
}

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name      string    `json:"name" binding:"required"`
	CreatorID uuid.UUID `json:"creator_id" binding:"required"`
	Price     float64   `json:"price" binding:"gte=0"`
}

// UpdatePriceRequest represents the request to replace a product's price
type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"gte=0"`
}
