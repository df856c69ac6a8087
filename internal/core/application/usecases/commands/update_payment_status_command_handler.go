package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdatePaymentStatusCommandHandler records payment status changes on an
// order. Recording a successful payment while the order is still pending
// advances it to processing; the aggregate owns that rule, the handler only
// persists the result. Payment changes never touch inventory: the reservation
// taken at creation already covers the stock.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment status updates.
func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment status command and returns the updated order.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.RecordPayment(cmd.PaymentStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderChanged(ctx, ports.OrderPaymentChanged, aggregate)

	return aggregate, nil
}
