package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog with inventory counters.
// Visible to every caller, so it carries no principal.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list all products.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is one catalog entry. Available is derived from the
// stored counters, mirroring the domain rule that it is never persisted.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	Quantity    int
	Reserved    int
	Available   int
}
