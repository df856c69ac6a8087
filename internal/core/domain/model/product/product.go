package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is the aggregate root for a catalog item and its inventory ledger.
//
// Product maintains these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price must be positive
//   - quantity and reserved are never negative
//   - available is always derived as max(0, quantity - reserved)
//   - Can only be created through NewProduct or RestoreProduct
//
// The struct uses private fields to ensure encapsulation; all inventory
// mutations go through Reserve, Release, Consume, and Restock.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name, snapshotted into order line items
	name string

	// description is the optional catalog description
	description string

	// price is the current unit price, snapshotted into order line items
	price float64

	// quantity is the total number of units owned
	quantity int

	// reserved is the number of units committed to unfulfilled orders
	reserved int

	// isConstructed ensures the product was created via a factory function
	isConstructed bool
}

// NewProduct creates a new Product with validation. The initial stock becomes
// the quantity counter; nothing is reserved.
//
// Returns an error if the id is invalid, the name is empty, the price is not
// positive, or the quantity is negative.
func NewProduct(id kernel.UUID, name, description string, price float64, quantity int) (*Product, error) {
	p := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// reservation counter. Used by the repository layer only.
func RestoreProduct(id kernel.UUID, name, description string, price float64, quantity, reserved int) (*Product, error) {
	p, err := NewProduct(id, name, description, price, quantity)
	if err != nil {
		return nil, err
	}

	if reserved < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("reserved",
			fmt.Errorf("%d is negative", reserved))
	}
	p.reserved = reserved

	return p, nil
}

// Validate ensures the Product instance was properly constructed through a
// factory function. Called when reconstructing products from persistence.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's catalog description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Quantity returns the total number of units owned.
func (p *Product) Quantity() int {
	return p.quantity
}

// Reserved returns the number of units committed to unfulfilled orders.
func (p *Product) Reserved() int {
	return p.reserved
}

// Available returns the number of units that can be newly ordered.
// It is always derived from the other two counters, never stored.
func (p *Product) Available() int {
	available := p.quantity - p.reserved
	if available < 0 {
		return 0
	}
	return available
}

// CanReserve reports whether qty units could be reserved right now.
// It performs no mutation; the create-order flow uses it for its
// validate-everything pass before any reservation is applied.
func (p *Product) CanReserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if available := p.Available(); available < qty {
		return errs.NewInsufficientInventoryError(p.id.String(), qty, available)
	}
	return nil
}

// Reserve commits qty available units to a pending order.
//
// Returns an InsufficientInventoryError if fewer than qty units are available.
// On success the reserved counter grows by qty and available shrinks by qty;
// the total quantity is untouched.
func (p *Product) Reserve(qty int) error {
	if err := p.CanReserve(qty); err != nil {
		return err
	}

	p.reserved += qty
	return nil
}

// Release returns qty reserved units to the available pool. Used when an order
// is cancelled or deleted. Releasing more than is currently reserved clamps the
// counter at zero rather than driving it negative.
func (p *Product) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	p.reserved -= qty
	if p.reserved < 0 {
		p.reserved = 0
	}
	return nil
}

// Consume converts a prior reservation into a permanent deduction on shipment:
// both quantity and reserved drop by qty, leaving available unchanged.
//
// Returns an error if qty exceeds the current reservation or stock, since
// consuming without a matching reservation would corrupt the ledger.
func (p *Product) Consume(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.reserved {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("cannot consume %d units, only %d reserved", qty, p.reserved))
	}
	if qty > p.quantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("cannot consume %d units, only %d in stock", qty, p.quantity))
	}

	p.quantity -= qty
	p.reserved -= qty
	return nil
}

// Restock adds qty units of new stock to the total quantity.
func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	p.quantity += qty
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
