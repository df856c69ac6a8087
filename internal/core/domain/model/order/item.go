package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is a line item on an order. Name and price are snapshotted from the
// product at order time so later product mutations cannot change what the
// customer agreed to pay.
//
// Item is a value object; use NewItem to create one.
type Item struct {
	productID kernel.UUID
	name      string
	price     float64
	quantity  int
	variant   string
}

// NewItem creates a line item with validation. The name and price are the
// product's values at the moment the order is placed; variant is optional.
func NewItem(productID kernel.UUID, name string, price float64, quantity int, variant string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if price <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not greater than 0", price))
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return Item{
		productID: productID,
		name:      name,
		price:     price,
		quantity:  quantity,
		variant:   variant,
	}, nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshotted at order time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price snapshotted at order time.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Variant returns the optional product variant (size, color, ...).
func (i Item) Variant() string {
	return i.variant
}

// Validate checks the item was created via NewItem.
func (i Item) Validate() error {
	if i.productID.Validate() != nil || i.name == "" || i.price <= 0 || i.quantity < 1 {
		return errs.NewValueIsInvalidError("item")
	}
	return nil
}
