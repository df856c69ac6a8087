package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and their inventory counters.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate, including its
	// inventory counters.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row for the remainder of
	// the surrounding transaction. Every inventory mutation (reserve, release,
	// consume, restock) must read through this method so concurrent orders
	// against the same product serialize instead of overselling.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
