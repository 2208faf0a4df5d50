package users

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	store UserStore
}

// NewUserService creates a new user service instance
func NewUserService(store UserStore) *UserServiceImpl {
	return &UserServiceImpl{
		store: store,
	}
}

// GetUser retrieves a user by ID
func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.store.GetUser(ctx, id)
}

// ListUsers returns all users
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*User, error) {
	return s.store.ListUsers(ctx)
}

// ListSubscribed returns the IDs the given user subscribes to
func (s *UserServiceImpl) ListSubscribed(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return s.store.ListSubscribed(ctx, id)
}

// ListFollowers returns the IDs following the given user
func (s *UserServiceImpl) ListFollowers(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return s.store.ListFollowers(ctx, id)
}

// CreateUser creates a new user
func (s *UserServiceImpl) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if len(strings.TrimSpace(req.Name)) < MinNameLength {
		return nil, NewUserValidationError("name must be at least 3 characters")
	}
	return s.store.CreateUser(ctx, req)
}

// DeleteUser deletes a user and all edges referencing it
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteUser(ctx, id)
}

// Subscribe adds a subscription edge
func (s *UserServiceImpl) Subscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error {
	if subscriberID == targetID {
		return NewSelfSubscriptionError(subscriberID)
	}
	return s.store.Subscribe(ctx, subscriberID, targetID)
}

// Unsubscribe removes a subscription edge
func (s *UserServiceImpl) Unsubscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error {
	return s.store.Unsubscribe(ctx, subscriberID, targetID)
}

// UnsubscribeAll removes every outgoing edge of the given user
func (s *UserServiceImpl) UnsubscribeAll(ctx context.Context, id uuid.UUID) error {
	return s.store.UnsubscribeAll(ctx, id)
}

// RemoveAllFollowers removes every incoming edge of the given user
func (s *UserServiceImpl) RemoveAllFollowers(ctx context.Context, id uuid.UUID) error {
	return s.store.RemoveAllFollowers(ctx, id)
}
