package users

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types for user and subscription operations

// UserError represents errors related to user records
type UserError struct {
	Type    string
	UserID  uuid.UUID
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("user error [%s] for user %s: %s (caused by: %v)", e.Type, e.UserID, e.Message, e.Cause)
	}
	return fmt.Sprintf("user error [%s] for user %s: %s", e.Type, e.UserID, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// User error types
const (
	UserErrorTypeNotFound         = "not_found"
	UserErrorTypeValidationFailed = "validation_failed"
)

// NewUserNotFoundError creates an error for when a user is not found
func NewUserNotFoundError(userID uuid.UUID) *UserError {
	return &UserError{
		Type:    UserErrorTypeNotFound,
		UserID:  userID,
		Message: "user not found",
	}
}

// NewUserValidationError creates an error for user validation failures
func NewUserValidationError(message string) *UserError {
	return &UserError{
		Type:    UserErrorTypeValidationFailed,
		Message: message,
	}
}

// SubscriptionError represents errors related to subscription edges
type SubscriptionError struct {
	Type         string
	SubscriberID uuid.UUID
	TargetID     uuid.UUID
	Message      string
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription error [%s] for %s -> %s: %s", e.Type, e.SubscriberID, e.TargetID, e.Message)
}

// Subscription error types
const (
	SubscriptionErrorTypeNotFound          = "not_found"
	SubscriptionErrorTypeAlreadySubscribed = "already_subscribed"
	SubscriptionErrorTypeSelfSubscription  = "self_subscription"
)

// NewAlreadySubscribedError creates an error for a duplicate subscription edge
func NewAlreadySubscribedError(subscriberID, targetID uuid.UUID) *SubscriptionError {
	return &SubscriptionError{
		Type:         SubscriptionErrorTypeAlreadySubscribed,
		SubscriberID: subscriberID,
		TargetID:     targetID,
		Message:      "user already subscribed",
	}
}

// NewNotSubscribedError creates an error for removing an edge that does not exist
func NewNotSubscribedError(subscriberID, targetID uuid.UUID) *SubscriptionError {
	return &SubscriptionError{
		Type:         SubscriptionErrorTypeNotFound,
		SubscriberID: subscriberID,
		TargetID:     targetID,
		Message:      "user not found or not subscribed",
	}
}

// NewSelfSubscriptionError creates an error for a user subscribing to themselves
func NewSelfSubscriptionError(userID uuid.UUID) *SubscriptionError {
	return &SubscriptionError{
		Type:         SubscriptionErrorTypeSelfSubscription,
		SubscriberID: userID,
		TargetID:     userID,
		Message:      "users cannot subscribe to themselves",
	}
}

// IsNotFound reports whether err is a missing user or missing edge
func IsNotFound(err error) bool {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Type == UserErrorTypeNotFound
	}
	var subErr *SubscriptionError
	if errors.As(err, &subErr) {
		return subErr.Type == SubscriptionErrorTypeNotFound
	}
	return false
}

// IsConflict reports whether err is a duplicate subscription edge
func IsConflict(err error) bool {
	var subErr *SubscriptionError
	if errors.As(err, &subErr) {
		return subErr.Type == SubscriptionErrorTypeAlreadySubscribed
	}
	return false
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Type == UserErrorTypeValidationFailed
	}
	var subErr *SubscriptionError
	if errors.As(err, &subErr) {
		return subErr.Type == SubscriptionErrorTypeSelfSubscription
	}
	return false
}
