package users

import (
	"context"

	"github.com/google/uuid"
)

// UserStore defines the interface for user and subscription storage operations
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	ListSubscribed(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	ListFollowers(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Subscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error
	Unsubscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error
	UnsubscribeAll(ctx context.Context, id uuid.UUID) error
	RemoveAllFollowers(ctx context.Context, id uuid.UUID) error
}

// UserService defines the interface for user service operations
type UserService interface {
	UserStore
}
