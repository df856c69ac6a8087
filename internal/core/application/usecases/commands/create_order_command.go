package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemRequest is one requested line of a create-order request: which product
// and how many units. Name and price are NOT part of the request; they are
// snapshotted from the product when the order is created.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
	Variant   string
}

// CreateOrderCommand represents a request to place a new order.
// Inputs arrive already validated in shape by the boundary layer; the command
// re-checks the domain rules it depends on.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, userID, items,
//	    shippingAddr, billingAddr, order.CreditCard, order.Express, "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	items           []ItemRequest
	shippingAddress order.Address
	billingAddress  order.Address
	paymentMethod   order.PaymentMethod
	shippingMethod  order.ShippingMethod
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the item list, both addresses, and the method enums.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []ItemRequest,
	shippingAddress order.Address,
	billingAddress order.Address,
	paymentMethod order.PaymentMethod,
	shippingMethod order.ShippingMethod,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setShippingAddress(shippingAddress),
		cmd.setBillingAddress(billingAddress),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setShippingMethod(shippingMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemRequest {
	items := make([]ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// ShippingAddress returns the delivery address.
func (c CreateOrderCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

// BillingAddress returns the invoice address.
func (c CreateOrderCommand) BillingAddress() order.Address {
	return c.billingAddress
}

// PaymentMethod returns the selected payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// ShippingMethod returns the selected shipping method.
func (c CreateOrderCommand) ShippingMethod() order.ShippingMethod {
	return c.shippingMethod
}

// Notes returns the customer-supplied notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1", i)
		}
	}

	c.items = make([]ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(a order.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.shippingAddress = a
	return nil
}

func (c *CreateOrderCommand) setBillingAddress(a order.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.billingAddress = a
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}

func (c *CreateOrderCommand) setShippingMethod(m order.ShippingMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.shippingMethod = m
	return nil
}
