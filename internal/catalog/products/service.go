package products

import (
	"context"

	"github.com/google/uuid"
)

// ProductServiceImpl implements the ProductService interface
type ProductServiceImpl struct {
	store ProductStore
}

// NewProductService creates a new product service instance
func NewProductService(store ProductStore) *ProductServiceImpl {
	return &ProductServiceImpl{
		store: store,
	}
}

// GetProduct retrieves a product by ID
func (s *ProductServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.store.GetProduct(ctx, id)
}

// ListProducts returns all products
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.store.ListProducts(ctx)
}

// ListProductsByCreator returns every product attributed to the given user
func (s *ProductServiceImpl) ListProductsByCreator(ctx context.Context, creatorID uuid.UUID) ([]*Product, error) {
	return s.store.ListProductsByCreator(ctx, creatorID)
}

// CreateProduct creates a new product
func (s *ProductServiceImpl) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, NewProductValidationError("name is required")
	}
	if req.Price < 0 {
		return nil, NewProductValidationError("price cannot be negative")
	}
	return s.store.CreateProduct(ctx, req)
}

// DeleteProduct deletes a product
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteProduct(ctx, id)
}

// DeleteAllByCreator removes every product attributed to the given user
func (s *ProductServiceImpl) DeleteAllByCreator(ctx context.Context, creatorID uuid.UUID) error {
	return s.store.DeleteAllByCreator(ctx, creatorID)
}

// UpdatePrice replaces the price of a product
func (s *ProductServiceImpl) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (*Product, error) {
	return s.store.UpdatePrice(ctx, id, price)
}
