package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row until the
	// surrounding transaction ends. Lifecycle mutations read through this
	// method so concurrent changes to the same order serialize and an
	// inventory effect can never run twice.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage. Callers must have already checked
	// the order is deletable and released its reservations.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingCreatedBefore retrieves pending, unpaid orders created
	// before the cutoff. Used by the abandoned-order job to find reservations
	// that should be returned to the available pool.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
