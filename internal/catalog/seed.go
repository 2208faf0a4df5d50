package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/prodsub/prodsub/internal/catalog/products"
	"github.com/prodsub/prodsub/internal/catalog/users"
)

// SeedDemoData populates empty stores with a small demo data set: four
// users and four products spread across three of them. Intended for local
// development; gated behind config in the server.
func SeedDemoData(ctx context.Context, c *Catalog) error {
	seedUsers := []string{
		"Mette Frederiksen",
		"Margrethe Ingrid",
		"Mads Mikkelsen",
		"Nikolaj Waldau",
	}

	created := make([]*users.User, 0, len(seedUsers))
	for _, name := range seedUsers {
		user, err := c.CreateUser(ctx, &users.CreateUserRequest{Name: name})
		if err != nil {
			return err
		}
		created = append(created, user)
	}

	seedProducts := []struct {
		name    string
		creator int
		price   float64
	}{
		{"Royal Copenhagen Dinnerware", 1, 674.99},
		{"Sømods Bolcher Bonbons", 3, 5.99},
		{"Georg Jensen Jewelry", 1, 1620.00},
		{"PH Lamps", 0, 525.55},
	}

	for _, p := range seedProducts {
		_, err := c.CreateProduct(ctx, &products.CreateProductRequest{
			Name:      p.name,
			CreatorID: created[p.creator].ID,
			Price:     p.price,
		})
		if err != nil {
			return err
		}
	}

	c.logger.Info("Seeded demo data",
		zap.Int("users", len(seedUsers)),
		zap.Int("products", len(seedProducts)))
	return nil
}
