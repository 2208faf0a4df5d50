package users

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*InMemoryStore, context.Context) {
	t.Helper()
	return NewInMemoryStore(), context.Background()
}

func mustCreateUser(t *testing.T, store *InMemoryStore, name string) *User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), &CreateUserRequest{Name: name})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	store, ctx := newTestStore(t)

	t.Run("CreatesWithFreshIDAndEmptyEdgeSets", func(t *testing.T) {
		user, err := store.CreateUser(ctx, &CreateUserRequest{Name: "Ann Andersen"})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Ann Andersen", user.Name)
		assert.Empty(t, user.SubscribedUsers)
		assert.Empty(t, user.Followers)
	})

	t.Run("RejectsShortName", func(t *testing.T) {
		_, err := store.CreateUser(ctx, &CreateUserRequest{Name: "Al"})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestGetUser(t *testing.T) {
	store, ctx := newTestStore(t)
	user := mustCreateUser(t, store, "Mette Frederiksen")

	t.Run("ReturnsExistingUser", func(t *testing.T) {
		got, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Mette Frederiksen", got.Name)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		_, err := store.GetUser(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestListUsers(t *testing.T) {
	store, ctx := newTestStore(t)
	first := mustCreateUser(t, store, "Mette Frederiksen")
	second := mustCreateUser(t, store, "Mads Mikkelsen")

	list, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestListEdgesUnknownUser(t *testing.T) {
	store, ctx := newTestStore(t)

	// Unknown IDs yield empty lists, never errors
	subscribed, err := store.ListSubscribed(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, subscribed)

	followers, err := store.ListFollowers(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestSubscribe(t *testing.T) {
	store, ctx := newTestStore(t)
	ann := mustCreateUser(t, store, "Ann Andersen")
	bob := mustCreateUser(t, store, "Bob Berg")

	t.Run("AddsBothHalvesOfTheEdge", func(t *testing.T) {
		require.NoError(t, store.Subscribe(ctx, ann.ID, bob.ID))

		subscribed, err := store.ListSubscribed(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{bob.ID}, subscribed)

		followers, err := store.ListFollowers(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ann.ID}, followers)
	})

	t.Run("DuplicateEdgeIsConflict", func(t *testing.T) {
		err := store.Subscribe(ctx, ann.ID, bob.ID)
		require.Error(t, err)
		assert.True(t, IsConflict(err))

		// Edge count stays at 1
		subscribed, err := store.ListSubscribed(ctx, ann.ID)
		require.NoError(t, err)
		assert.Len(t, subscribed, 1)
	})

	t.Run("UnknownSubscriberIsNotFound", func(t *testing.T) {
		err := store.Subscribe(ctx, uuid.New(), bob.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("UnknownTargetIsNotFound", func(t *testing.T) {
		err := store.Subscribe(ctx, ann.ID, uuid.New())
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("SelfSubscriptionRejected", func(t *testing.T) {
		err := store.Subscribe(ctx, ann.ID, ann.ID)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestUnsubscribe(t *testing.T) {
	store, ctx := newTestStore(t)
	ann := mustCreateUser(t, store, "Ann Andersen")
	bob := mustCreateUser(t, store, "Bob Berg")

	t.Run("RoundTripRestoresBothEdgeSets", func(t *testing.T) {
		require.NoError(t, store.Subscribe(ctx, ann.ID, bob.ID))
		require.NoError(t, store.Unsubscribe(ctx, ann.ID, bob.ID))

		subscribed, err := store.ListSubscribed(ctx, ann.ID)
		require.NoError(t, err)
		assert.Empty(t, subscribed)

		followers, err := store.ListFollowers(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, followers)
	})

	t.Run("MissingEdgeIsNotFound", func(t *testing.T) {
		err := store.Unsubscribe(ctx, ann.ID, bob.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("UnknownUserIsNotFound", func(t *testing.T) {
		err := store.Unsubscribe(ctx, uuid.New(), bob.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestSymmetryInvariant(t *testing.T) {
	store, ctx := newTestStore(t)

	members := make([]*User, 4)
	for i, name := range []string{"Mette Frederiksen", "Margrethe Ingrid", "Mads Mikkelsen", "Nikolaj Waldau"} {
		members[i] = mustCreateUser(t, store, name)
	}

	// Build a small graph, remove a few edges, delete a user, and check the
	// symmetry invariant after each mutation.
	checkSymmetry := func(t *testing.T) {
		t.Helper()
		list, err := store.ListUsers(ctx)
		require.NoError(t, err)
		for _, a := range list {
			for _, b := range list {
				aSubscribesB := containsID(a.SubscribedUsers, b.ID)
				bFollowedByA := containsID(b.Followers, a.ID)
				assert.Equal(t, aSubscribesB, bFollowedByA,
					"asymmetric edge between %s and %s", a.Name, b.Name)
			}
		}
	}

	require.NoError(t, store.Subscribe(ctx, members[0].ID, members[1].ID))
	checkSymmetry(t)
	require.NoError(t, store.Subscribe(ctx, members[0].ID, members[2].ID))
	require.NoError(t, store.Subscribe(ctx, members[1].ID, members[0].ID))
	require.NoError(t, store.Subscribe(ctx, members[3].ID, members[0].ID))
	checkSymmetry(t)

	require.NoError(t, store.Unsubscribe(ctx, members[0].ID, members[1].ID))
	checkSymmetry(t)

	require.NoError(t, store.DeleteUser(ctx, members[0].ID))
	checkSymmetry(t)
}

func TestDeleteUser(t *testing.T) {
	store, ctx := newTestStore(t)
	ann := mustCreateUser(t, store, "Ann Andersen")
	bob := mustCreateUser(t, store, "Bob Berg")
	eva := mustCreateUser(t, store, "Eva Engel")

	require.NoError(t, store.Subscribe(ctx, ann.ID, bob.ID))
	require.NoError(t, store.Subscribe(ctx, bob.ID, eva.ID))
	require.NoError(t, store.Subscribe(ctx, eva.ID, bob.ID))

	t.Run("RemovesAllEdgesReferencingTheUser", func(t *testing.T) {
		require.NoError(t, store.DeleteUser(ctx, bob.ID))

		_, err := store.GetUser(ctx, bob.ID)
		assert.True(t, IsNotFound(err))

		for _, other := range []uuid.UUID{ann.ID, eva.ID} {
			subscribed, err := store.ListSubscribed(ctx, other)
			require.NoError(t, err)
			assert.NotContains(t, subscribed, bob.ID)

			followers, err := store.ListFollowers(ctx, other)
			require.NoError(t, err)
			assert.NotContains(t, followers, bob.ID)
		}
	})

	t.Run("SecondDeleteIsNotFound", func(t *testing.T) {
		err := store.DeleteUser(ctx, bob.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestCascadePrimitives(t *testing.T) {
	store, ctx := newTestStore(t)
	hub := mustCreateUser(t, store, "Hub Hansen")
	others := []*User{
		mustCreateUser(t, store, "Ann Andersen"),
		mustCreateUser(t, store, "Bob Berg"),
		mustCreateUser(t, store, "Eva Engel"),
	}

	for _, other := range others {
		require.NoError(t, store.Subscribe(ctx, hub.ID, other.ID))
		require.NoError(t, store.Subscribe(ctx, other.ID, hub.ID))
	}

	t.Run("UnsubscribeAllRemovesOutgoingEdges", func(t *testing.T) {
		require.NoError(t, store.UnsubscribeAll(ctx, hub.ID))

		subscribed, err := store.ListSubscribed(ctx, hub.ID)
		require.NoError(t, err)
		assert.Empty(t, subscribed)

		// Incoming edges are untouched
		followers, err := store.ListFollowers(ctx, hub.ID)
		require.NoError(t, err)
		assert.Len(t, followers, len(others))
	})

	t.Run("RemoveAllFollowersRemovesIncomingEdges", func(t *testing.T) {
		require.NoError(t, store.RemoveAllFollowers(ctx, hub.ID))

		followers, err := store.ListFollowers(ctx, hub.ID)
		require.NoError(t, err)
		assert.Empty(t, followers)

		for _, other := range others {
			subscribed, err := store.ListSubscribed(ctx, other.ID)
			require.NoError(t, err)
			assert.NotContains(t, subscribed, hub.ID)
		}
	})

	t.Run("TolerantOfZeroEdges", func(t *testing.T) {
		assert.NoError(t, store.UnsubscribeAll(ctx, hub.ID))
		assert.NoError(t, store.RemoveAllFollowers(ctx, hub.ID))
	})
}

func TestConcurrentSubscribes(t *testing.T) {
	store, ctx := newTestStore(t)
	hub := mustCreateUser(t, store, "Hub Hansen")

	const n = 16
	targets := make([]*User, n)
	for i := range targets {
		targets[i] = mustCreateUser(t, store, "Follower Frandsen")
	}

	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Add(1)
		go func(targetID uuid.UUID) {
			defer wg.Done()
			assert.NoError(t, store.Subscribe(ctx, hub.ID, targetID))
		}(target.ID)
	}
	wg.Wait()

	subscribed, err := store.ListSubscribed(ctx, hub.ID)
	require.NoError(t, err)
	assert.Len(t, subscribed, n)

	for _, target := range targets {
		followers, err := store.ListFollowers(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{hub.ID}, followers)
	}
}

func TestServiceValidation(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(NewInMemoryStore())

	t.Run("TrimsWhitespaceBeforeLengthCheck", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &CreateUserRequest{Name: "  a  "})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("SelfSubscriptionRejectedBeforeStore", func(t *testing.T) {
		id := uuid.New()
		err := service.Subscribe(ctx, id, id)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}
