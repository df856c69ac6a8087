package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order through its lifecycle and
// applies the matching inventory effect in the same transaction:
//
//   - to cancelled: every line item's reservation is released back to the
//     available pool
//   - to shipped: every line item's reservation is consumed, permanently
//     deducting the stock, and the tracking number is recorded
//   - other transitions have no inventory effect
//
// The transition itself is checked by the order aggregate against its
// transition table, so an illegal move (including cancelling a cancelled
// order) fails before any product is touched. The order row is read FOR
// UPDATE: concurrent mutations of the same order serialize, and the later
// transaction sees the committed status, so a reservation can never be
// released or consumed twice.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	switch cmd.NewStatus() {
	case order.Cancelled:
		err = applyInventoryEffect(ctx, uow, aggregate, releaseReservation)
	case order.Shipped:
		if cmd.TrackingNumber() != "" {
			aggregate.SetTrackingNumber(cmd.TrackingNumber())
		}
		err = applyInventoryEffect(ctx, uow, aggregate, consumeReservation)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderChanged(ctx, ports.OrderStatusChanged, aggregate)

	return aggregate, nil
}

type inventoryEffect int

const (
	releaseReservation inventoryEffect = iota
	consumeReservation
)

// applyInventoryEffect locks each product referenced by the order's items and
// applies the inventory effect with the item quantities summed per product,
// so a product appearing in several lines is updated once. Shared by the
// status change and delete handlers.
func applyInventoryEffect(ctx context.Context, uow UoW, aggregate *order.Order, effect inventoryEffect) error {
	quantities := make(map[kernel.UUID]int)
	productIDs := make([]kernel.UUID, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		if _, seen := quantities[item.ProductID()]; !seen {
			productIDs = append(productIDs, item.ProductID())
		}
		quantities[item.ProductID()] += item.Quantity()
	}

	productRepo := uow.ProductRepository()
	for _, productID := range productIDs {
		p, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		switch effect {
		case releaseReservation:
			err = p.Release(quantities[productID])
		case consumeReservation:
			err = p.Consume(quantities[productID])
		}
		if err != nil {
			return err
		}

		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
