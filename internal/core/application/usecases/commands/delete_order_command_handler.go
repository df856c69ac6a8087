package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DeleteOrderCommandHandler deletes a pending order on behalf of its owner or
// an admin. The held reservations are released in the same transaction that
// removes the order, so deleting can never strand reserved stock. The order
// row is read FOR UPDATE, so a delete racing a cancel of the same order
// cannot release the reservations twice.
//
// Orders past pending are part of the business record; the aggregate's
// CanDelete check rejects them and the caller must cancel instead.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delete command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Principal().CanAccessOrdersOf(aggregate.UserID()) {
		return errs.NewForbiddenError("delete order")
	}

	if err = aggregate.CanDelete(); err != nil {
		return err
	}

	if err = applyInventoryEffect(ctx, uow, aggregate, releaseReservation); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishOrderChanged(ctx, ports.OrderDeleted, aggregate)

	return nil
}
