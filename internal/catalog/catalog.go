package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prodsub/prodsub/internal/catalog/products"
	"github.com/prodsub/prodsub/internal/catalog/users"
)

// Catalog coordinates the user store and the product store. It owns no
// state of its own; it enforces cross-store preconditions and sequences
// cascading mutations.
type Catalog struct {
	users    users.UserService
	products products.ProductService
	logger   *zap.Logger
}

// NewCatalog creates a new catalog coordinator
func NewCatalog(userService users.UserService, productService products.ProductService, logger *zap.Logger) *Catalog {
	return &Catalog{
		users:    userService,
		products: productService,
		logger:   logger,
	}
}

// User operations

func (c *Catalog) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	return c.users.GetUser(ctx, id)
}

func (c *Catalog) ListUsers(ctx context.Context) ([]*users.User, error) {
	return c.users.ListUsers(ctx)
}

func (c *Catalog) ListSubscribed(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return c.users.ListSubscribed(ctx, id)
}

func (c *Catalog) ListFollowers(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return c.users.ListFollowers(ctx, id)
}

func (c *Catalog) CreateUser(ctx context.Context, req *users.CreateUserRequest) (*users.User, error) {
	return c.users.CreateUser(ctx, req)
}

// DeleteUser unwinds everything that references the user before removing
// the record: outgoing edges, then incoming edges, then the user's
// products. The record must survive until the edge unwinding is done,
// because the record is where the edges are enumerated from.
func (c *Catalog) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := c.users.GetUser(ctx, id); err != nil {
		return err
	}

	if err := c.users.UnsubscribeAll(ctx, id); err != nil {
		return err
	}
	if err := c.users.RemoveAllFollowers(ctx, id); err != nil {
		return err
	}
	if err := c.products.DeleteAllByCreator(ctx, id); err != nil {
		return err
	}
	if err := c.users.DeleteUser(ctx, id); err != nil {
		return err
	}

	c.logger.Info("Deleted user and cascaded dependent records",
		zap.String("user_id", id.String()))
	return nil
}

func (c *Catalog) Subscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error {
	return c.users.Subscribe(ctx, subscriberID, targetID)
}

func (c *Catalog) Unsubscribe(ctx context.Context, subscriberID, targetID uuid.UUID) error {
	return c.users.Unsubscribe(ctx, subscriberID, targetID)
}

// Product operations

func (c *Catalog) GetProduct(ctx context.Context, id uuid.UUID) (*products.Product, error) {
	return c.products.GetProduct(ctx, id)
}

func (c *Catalog) ListProducts(ctx context.Context) ([]*products.Product, error) {
	return c.products.ListProducts(ctx)
}

// ListProductsByCreator returns the products of one user, or an empty list
// when the user does not exist
func (c *Catalog) ListProductsByCreator(ctx context.Context, creatorID uuid.UUID) ([]*products.Product, error) {
	if _, err := c.users.GetUser(ctx, creatorID); err != nil {
		if users.IsNotFound(err) {
			return []*products.Product{}, nil
		}
		return nil, err
	}
	return c.products.ListProductsByCreator(ctx, creatorID)
}

// ListProductsFromSubscriptions expands the user's subscription set into
// the concatenation of each subscribed user's products, in subscription
// order. An unknown user yields an empty list, not an error.
func (c *Catalog) ListProductsFromSubscriptions(ctx context.Context, userID uuid.UUID) ([]*products.Product, error) {
	if _, err := c.users.GetUser(ctx, userID); err != nil {
		if users.IsNotFound(err) {
			return []*products.Product{}, nil
		}
		return nil, err
	}

	subscribed, err := c.users.ListSubscribed(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed := make([]*products.Product, 0)
	for _, creatorID := range subscribed {
		items, err := c.products.ListProductsByCreator(ctx, creatorID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, items...)
	}
	return feed, nil
}

// CreateProduct creates a product after verifying the creator exists. The
// product store itself does not know about users; this is the one place
// the referential precondition is enforced.
func (c *Catalog) CreateProduct(ctx context.Context, req *products.CreateProductRequest) (*products.Product, error) {
	if _, err := c.users.GetUser(ctx, req.CreatorID); err != nil {
		return nil, err
	}
	return c.products.CreateProduct(ctx, req)
}

func (c *Catalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return c.products.DeleteProduct(ctx, id)
}

func (c *Catalog) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (*products.Product, error) {
	return c.products.UpdatePrice(ctx, id, price)
}
