package products

import (
	"context"

	"github.com/google/uuid"
)

// ProductStore defines the interface for product storage operations.
// CreateProduct does not verify that the creator exists; that precondition
// belongs to the catalog coordinator, which can see the user store.
type ProductStore interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListProductsByCreator(ctx context.Context, creatorID uuid.UUID) ([]*Product, error)
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	DeleteAllByCreator(ctx context.Context, creatorID uuid.UUID) error
	UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (*Product, error)
}

// ProductService defines the interface for product service operations
type ProductService interface {
	ProductStore
}
