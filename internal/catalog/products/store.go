package products

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore implements ProductStore interface with in-memory storage
type InMemoryStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*Product
	order    []uuid.UUID
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		products: make(map[uuid.UUID]*Product),
	}
}

// GetProduct retrieves a product by ID
func (s *InMemoryStore) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return nil, NewProductNotFoundError(id)
	}

	copied := *product
	return &copied, nil
}

// ListProducts returns all products in creation order
func (s *InMemoryStore) ListProducts(ctx context.Context) ([]*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Product, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.products[id]
		list = append(list, &copied)
	}
	return list, nil
}

// ListProductsByCreator returns every product attributed to the given user.
// Linear scan; the interface allows swapping in a creator index later.
func (s *InMemoryStore) ListProductsByCreator(ctx context.Context, creatorID uuid.UUID) ([]*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Product, 0)
	for _, id := range s.order {
		if product := s.products[id]; product.CreatorID == creatorID {
			copied := *product
			list = append(list, &copied)
		}
	}
	return list, nil
}

// CreateProduct creates a new product with a fresh ID
func (s *InMemoryStore) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, NewProductValidationError("name is required")
	}
	if req.Price < 0 {
		return nil, NewProductValidationError("price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := &Product{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatorID: req.CreatorID,
		Price:     req.Price,
	}
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)

	copied := *product
	return &copied, nil
}

// DeleteProduct removes a product
func (s *InMemoryStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return NewProductNotFoundError(id)
	}

	delete(s.products, id)
	s.order = removeID(s.order, id)
	return nil
}

// DeleteAllByCreator removes every product attributed to the given user.
// Tolerant of zero matches; used as a cascade primitive.
func (s *InMemoryStore) DeleteAllByCreator(ctx context.Context, creatorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.order[:0]
	for _, id := range s.order {
		if s.products[id].CreatorID == creatorID {
			delete(s.products, id)
			continue
		}
		remaining = append(remaining, id)
	}
	s.order = remaining
	return nil
}

// UpdatePrice replaces the price of a product, leaving all other fields
// unchanged
func (s *InMemoryStore) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (*Product, error) {
	if price < 0 {
		return nil, NewProductValidationError("price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, exists := s.products[id]
	if !exists {
		return nil, NewProductNotFoundError(id)
	}

	product.Price = price
	copied := *product
	return &copied, nil
}

// removeID removes the first occurrence of id, preserving order
func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
