package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ReleaseAbandonedOrdersCommandHandler cancels pending orders whose payment
// never arrived and returns their reservations to the available pool. It is
// the sweep behind the background job that keeps abandoned carts from holding
// stock forever.
//
// All cancellations happen in one transaction: either the whole sweep lands
// or none of it does, and the next run picks the orders up again.
type ReleaseAbandonedOrdersCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewReleaseAbandonedOrdersCommandHandler creates a handler for the abandoned
// order sweep.
func NewReleaseAbandonedOrdersCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) ReleaseAbandonedOrdersCommandHandler {
	return ReleaseAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle cancels every abandoned order and reports how many were released.
func (h *ReleaseAbandonedOrdersCommandHandler) Handle(ctx context.Context, cmd ReleaseAbandonedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	abandoned, err := orderRepo.GetAllPendingCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	released := make([]*order.Order, 0, len(abandoned))
	for _, candidate := range abandoned {
		// The listing above runs without locks. Re-read each order under a
		// row lock and skip any that got paid or moved on in the meantime.
		aggregate, lockErr := orderRepo.GetForUpdate(ctx, candidate.ID())
		if lockErr != nil {
			return 0, lockErr
		}
		if aggregate.Status() != order.Pending || aggregate.PaymentStatus() == order.Paid {
			continue
		}

		if err = aggregate.ChangeStatus(order.Cancelled); err != nil {
			return 0, err
		}
		if err = applyInventoryEffect(ctx, uow, aggregate, releaseReservation); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		released = append(released, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range released {
		_ = h.publisher.PublishOrderChanged(ctx, ports.OrderStatusChanged, aggregate)
	}

	return len(released), nil
}
