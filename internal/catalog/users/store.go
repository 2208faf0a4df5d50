package users

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// userRecord is the store-internal representation of a user. The two edge
// slices are only ever mutated in pairs (addEdge/removeEdge) while holding
// the store lock, which keeps the subscribed/follower sets symmetric.
type userRecord struct {
	id         uuid.UUID
	name       string
	subscribed []uuid.UUID
	followers  []uuid.UUID
}

// InMemoryStore implements UserStore interface with in-memory storage
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*userRecord
	order []uuid.UUID
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make(map[uuid.UUID]*userRecord),
	}
}

// GetUser retrieves a user by ID
func (s *InMemoryStore) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.users[id]
	if !exists {
		return nil, NewUserNotFoundError(id)
	}

	return rec.snapshot(), nil
}

// ListUsers returns all users in creation order
func (s *InMemoryStore) ListUsers(ctx context.Context) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*User, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.users[id].snapshot())
	}
	return list, nil
}

// ListSubscribed returns the IDs the given user subscribes to. An unknown
// user yields an empty list, not an error.
func (s *InMemoryStore) ListSubscribed(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.users[id]
	if !exists {
		return []uuid.UUID{}, nil
	}
	return copyIDs(rec.subscribed), nil
}

// ListFollowers returns the IDs following the given user. Same
// absent-tolerant contract as ListSubscribed.
func (s *InMemoryStore) ListFollowers(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.users[id]
	if !exists {
		return []uuid.UUID{}, nil
	}
	return copyIDs(rec.followers), nil
}

// CreateUser creates a new user with a fresh ID and empty edge sets
func (s *InMemoryStore) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if len(req.Name) < MinNameLength {
		return nil, NewUserValidationError("name must be at least 3 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &userRecord{
		id:   uuid.New(),
		name: req.Name,
	}
	s.users[rec.id] = rec
	s.order = append(s.order, rec.id)

	return rec.snapshot(), nil
}

// DeleteUser removes a user. Every edge referencing the user, in either
// direction, is removed before the record itself so that no other user's
// sets keep a dangling ID.
func (s *InMemoryStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[id]
	if !exists {
		return NewUserNotFoundError(id)
	}

	for _, targetID := range copyIDs(rec.subscribed) {
		s.removeEdge(id, targetID)
	}
	for _, followerID := range copyIDs(rec.followers) {
		s.removeEdge(followerID, id)
	}

	delete(s.users, id)
	s.order = removeID(s.order, id)
	return nil
}

// Subscribe adds a subscription edge. Both halves of the edge are applied
// under the same critical section, so concurrent readers never observe a
// half-applied edge.
func (s *InMemoryStore) Subscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error {
	if subscriberID == targetID {
		return NewSelfSubscriptionError(subscriberID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber, exists := s.users[subscriberID]
	if !exists {
		return NewUserNotFoundError(subscriberID)
	}
	target, exists := s.users[targetID]
	if !exists {
		return NewUserNotFoundError(targetID)
	}

	if containsID(subscriber.subscribed, targetID) {
		return NewAlreadySubscribedError(subscriberID, targetID)
	}

	subscriber.subscribed = append(subscriber.subscribed, targetID)
	target.followers = append(target.followers, subscriberID)
	return nil
}

// Unsubscribe removes a subscription edge, both halves atomically
func (s *InMemoryStore) Unsubscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber, exists := s.users[subscriberID]
	if !exists {
		return NewUserNotFoundError(subscriberID)
	}
	if _, exists := s.users[targetID]; !exists {
		return NewUserNotFoundError(targetID)
	}

	if !containsID(subscriber.subscribed, targetID) {
		return NewNotSubscribedError(subscriberID, targetID)
	}

	s.removeEdge(subscriberID, targetID)
	return nil
}

// UnsubscribeAll removes every outgoing edge of the given user. Tolerant of
// zero edges; used as a cascade primitive during user deletion.
func (s *InMemoryStore) UnsubscribeAll(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[id]
	if !exists {
		return NewUserNotFoundError(id)
	}

	// Snapshot before iterating; removeEdge mutates the underlying slice.
	for _, targetID := range copyIDs(rec.subscribed) {
		s.removeEdge(id, targetID)
	}
	return nil
}

// RemoveAllFollowers removes every incoming edge of the given user by
// unsubscribing each follower. Tolerant of zero edges.
func (s *InMemoryStore) RemoveAllFollowers(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.users[id]
	if !exists {
		return NewUserNotFoundError(id)
	}

	for _, followerID := range copyIDs(rec.followers) {
		s.removeEdge(followerID, id)
	}
	return nil
}

// removeEdge removes both halves of the subscriberID -> targetID edge.
// Callers must hold the write lock. Missing records are skipped so cascade
// loops stay safe while edges are being unwound.
func (s *InMemoryStore) removeEdge(subscriberID, targetID uuid.UUID) {
	if subscriber, exists := s.users[subscriberID]; exists {
		subscriber.subscribed = removeID(subscriber.subscribed, targetID)
	}
	if target, exists := s.users[targetID]; exists {
		target.followers = removeID(target.followers, subscriberID)
	}
}

// snapshot returns a detached copy safe to hand to callers
func (r *userRecord) snapshot() *User {
	return &User{
		ID:              r.id,
		Name:            r.name,
		SubscribedUsers: copyIDs(r.subscribed),
		Followers:       copyIDs(r.followers),
	}
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
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
