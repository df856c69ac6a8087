package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// The handler runs a two-phase protocol inside a single transaction:
//
//  1. Validation pass: every requested product is fetched with a row lock and
//     checked, with nothing mutated. Problems (missing product, insufficient
//     availability) are collected per item so one request reports all of them.
//  2. Reservation pass: only when the whole request is valid, every product's
//     reservation counter is raised and the order is persisted in pending
//     status with pending payment.
//
// Any failure rolls the transaction back, so a rejected order can never leave
// partial reservations behind. The row locks taken in phase 1 serialize
// concurrent orders against the same products, so two requests cannot both
// pass validation against the same remaining stock.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingCalculator
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a publisher for
// post-commit order events.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingCalculator(),
		publisher:  publisher,
	}
}

// reservationLine groups the requested quantity per product so a product
// appearing in several request lines is locked once and checked against the
// combined quantity.
type reservationLine struct {
	product  *product.Product
	quantity int
}

// Handle processes the order creation command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	orderRepo := uow.OrderRepository()

	// Phase 1: fetch and validate everything, mutate nothing.
	reservations := make(map[kernel.UUID]*reservationLine)
	items := make([]order.Item, 0, len(cmd.Items()))
	var problems []string

	for _, req := range cmd.Items() {
		line, ok := reservations[req.ProductID]
		if !ok {
			p, err := productRepo.GetForUpdate(ctx, req.ProductID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					problems = append(problems, fmt.Sprintf("product %s not found", req.ProductID))
					continue
				}
				return nil, err
			}
			line = &reservationLine{product: p}
			reservations[req.ProductID] = line
		}

		line.quantity += req.Quantity
		if err := line.product.CanReserve(line.quantity); err != nil {
			problems = append(problems, err.Error())
			continue
		}

		item, err := order.NewItem(req.ProductID, line.product.Name(), line.product.Price(), req.Quantity, req.Variant)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(problems) > 0 {
		return nil, errs.NewValidationFailedError(problems)
	}

	// Phase 2: reserve everything and persist the order.
	for _, line := range reservations {
		if err := line.product.Reserve(line.quantity); err != nil {
			return nil, err
		}
		if err := productRepo.Update(ctx, line.product); err != nil {
			return nil, err
		}
	}

	totals := h.pricing.Calculate(items, cmd.ShippingMethod())

	created, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), items,
		cmd.ShippingAddress(), cmd.BillingAddress(),
		cmd.PaymentMethod(), cmd.ShippingMethod(),
		totals, cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Best effort: the adapter logs failures, the committed order stands.
	_ = h.publisher.PublishOrderChanged(ctx, ports.OrderCreated, created)

	return created, nil
}
