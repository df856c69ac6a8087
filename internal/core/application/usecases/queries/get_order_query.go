package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items. The principal is
// carried along so the handler can enforce that only the owner or an admin may
// read the order.
type GetOrderQuery struct {
	orderID   kernel.UUID
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order on behalf of the caller.
func NewGetOrderQuery(orderID kernel.UUID, principal kernel.Principal) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := principal.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the caller identity.
func (q GetOrderQuery) Principal() kernel.Principal {
	return q.principal
}
