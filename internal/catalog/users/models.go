package users

import (
	"github.com/google/uuid"
)

// User represents a member of the subscription graph
type User struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	SubscribedUsers []uuid.UUID `json:"subscribed_users"`
	Followers       []uuid.UUID `json:"followers"`
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name string `json:"name" binding:"required,min=3"`
}

// MinNameLength is the minimum accepted length for a user display name
const MinNameLength = 3
