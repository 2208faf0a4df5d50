package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateProduct(t *testing.T, store *InMemoryStore, name string, creatorID uuid.UUID, price float64) *Product {
	t.Helper()
	product, err := store.CreateProduct(context.Background(), &CreateProductRequest{
		Name:      name,
		CreatorID: creatorID,
		Price:     price,
	})
	require.NoError(t, err)
	return product
}

func TestCreateProduct(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	creatorID := uuid.New()

	t.Run("CreatesWithFreshID", func(t *testing.T) {
		product, err := store.CreateProduct(ctx, &CreateProductRequest{
			Name:      "PH Lamps",
			CreatorID: creatorID,
			Price:     525.55,
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, "PH Lamps", product.Name)
		assert.Equal(t, creatorID, product.CreatorID)
		assert.Equal(t, 525.55, product.Price)
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		_, err := store.CreateProduct(ctx, &CreateProductRequest{CreatorID: creatorID, Price: 1})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("RejectsNegativePrice", func(t *testing.T) {
		_, err := store.CreateProduct(ctx, &CreateProductRequest{Name: "Lamp", CreatorID: creatorID, Price: -1})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestGetProduct(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	product := mustCreateProduct(t, store, "Georg Jensen Jewelry", uuid.New(), 1620.00)

	t.Run("ReturnsExistingProduct", func(t *testing.T) {
		got, err := store.GetProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		_, err := store.GetProduct(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestListProductsByCreator(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	first := mustCreateProduct(t, store, "Dinnerware", alice, 674.99)
	mustCreateProduct(t, store, "Bonbons", bob, 5.99)
	second := mustCreateProduct(t, store, "Jewelry", alice, 1620.00)

	t.Run("FiltersByCreatorInCreationOrder", func(t *testing.T) {
		list, err := store.ListProductsByCreator(ctx, alice)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)
	})

	t.Run("UnknownCreatorYieldsEmptyList", func(t *testing.T) {
		list, err := store.ListProductsByCreator(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestUpdatePrice(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	product := mustCreateProduct(t, store, "PH Lamps", uuid.New(), 525.55)

	t.Run("ReplacesPriceOnly", func(t *testing.T) {
		updated, err := store.UpdatePrice(ctx, product.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, 10.0, updated.Price)
		assert.Equal(t, product.Name, updated.Name)
		assert.Equal(t, product.CreatorID, updated.CreatorID)

		got, err := store.GetProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.Price)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		_, err := store.UpdatePrice(ctx, uuid.New(), 10)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("RejectsNegativePrice", func(t *testing.T) {
		_, err := store.UpdatePrice(ctx, product.ID, -10)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestDeleteProduct(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	product := mustCreateProduct(t, store, "Bonbons", uuid.New(), 5.99)

	require.NoError(t, store.DeleteProduct(ctx, product.ID))

	_, err := store.GetProduct(ctx, product.ID)
	assert.True(t, IsNotFound(err))

	err = store.DeleteProduct(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteAllByCreator(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	mustCreateProduct(t, store, "Dinnerware", alice, 674.99)
	kept := mustCreateProduct(t, store, "Bonbons", bob, 5.99)
	mustCreateProduct(t, store, "Jewelry", alice, 1620.00)

	require.NoError(t, store.DeleteAllByCreator(ctx, alice))

	list, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)

	// Zero matches is not an error
	assert.NoError(t, store.DeleteAllByCreator(ctx, alice))
}
