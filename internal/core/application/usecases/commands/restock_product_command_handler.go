package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// RestockProductCommandHandler adds delivered stock to a product's quantity.
// The product row is locked for the update so a restock cannot race the
// reservation counters of a concurrent order.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restocking.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the restock command and returns the updated product.
func (h *RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Restock(cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
