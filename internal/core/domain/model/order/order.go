package order

import (
	"errors"
	"fmt"
	"math"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Totals holds the computed money fields of an order. The pricing calculator
// in the services package produces it; the aggregate only verifies it.
type Totals struct {
	Subtotal     float64
	ShippingCost float64
	Tax          float64
	Total        float64
}

// Order represents a storefront order. It is the aggregate root that manages
// the order lifecycle from creation through payment and fulfilment.
//
// Order follows these invariants:
//   - Must have a valid identifier and owning user
//   - Must have at least one line item
//   - subtotal equals the sum of price times quantity over the items
//   - totalAmount equals subtotal plus shippingCost plus tax
//   - Status transitions follow the explicit transition table in status.go
//   - Can only be created through NewOrder or RestoreOrder
//
// An order is owned by exactly one user; products are referenced by line
// items, with name and price snapshotted so product edits cannot change a
// placed order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning user
	userID kernel.UUID

	// items is the ordered sequence of line items
	items []Item

	// shippingAddress is where the order ships to
	shippingAddress Address

	// billingAddress is where the invoice goes
	billingAddress Address

	paymentMethod  PaymentMethod
	shippingMethod ShippingMethod

	// computed money fields, verified against the items on construction
	subtotal     float64
	shippingCost float64
	tax          float64
	totalAmount  float64

	// status is the current state in the order lifecycle
	status Status

	// paymentStatus tracks the payment side independently
	paymentStatus PaymentStatus

	// trackingNumber is set when the order ships
	trackingNumber string

	// notes is free-form text supplied by the customer
	notes string

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// moneyEpsilon absorbs float64 representation error when verifying totals
// that were computed with 2-decimal rounding.
const moneyEpsilon = 0.005

// NewOrder creates a new Order in Pending status with PaymentPending.
// The caller supplies the totals computed by the pricing calculator; the
// constructor re-verifies them against the items so a persisted order can
// never carry inconsistent money fields.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress Address,
	billingAddress Address,
	paymentMethod PaymentMethod,
	shippingMethod ShippingMethod,
	totals Totals,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setBillingAddress(billingAddress),
		o.setPaymentMethod(paymentMethod),
		o.setShippingMethod(shippingMethod),
	); err != nil {
		return nil, err
	}

	if err := o.setTotals(totals); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// statuses and tracking number. Used by the repository layer only.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress Address,
	billingAddress Address,
	paymentMethod PaymentMethod,
	shippingMethod ShippingMethod,
	totals Totals,
	status Status,
	paymentStatus PaymentStatus,
	trackingNumber string,
	notes string,
) (*Order, error) {
	o, err := NewOrder(id, userID, items, shippingAddress, billingAddress,
		paymentMethod, shippingMethod, totals, notes)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.trackingNumber = trackingNumber
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the line items, preserving their order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the invoice address.
func (o *Order) BillingAddress() Address {
	return o.billingAddress
}

// PaymentMethod returns how the customer intends to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// ShippingMethod returns the selected delivery speed.
func (o *Order) ShippingMethod() ShippingMethod {
	return o.shippingMethod
}

// Subtotal returns the sum of price times quantity over the items.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// ShippingCost returns the cost of the selected shipping method.
func (o *Order) ShippingCost() float64 {
	return o.shippingCost
}

// Tax returns the flat-rate tax computed on the subtotal.
func (o *Order) Tax() float64 {
	return o.tax
}

// TotalAmount returns subtotal plus shipping cost plus tax.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TrackingNumber returns the carrier tracking number, empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// Notes returns the customer-supplied free-form notes.
func (o *Order) Notes() string {
	return o.notes
}

// ChangeStatus moves the order to the next lifecycle status.
//
// The move is checked against the transition table before any field changes;
// disallowed moves (including re-entering Cancelled) fail with an
// InvalidStateError and leave the order untouched. Inventory side effects of
// the transition are the caller's responsibility.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetTrackingNumber records the carrier tracking number. Only meaningful once
// the order ships, but harmless earlier.
func (o *Order) SetTrackingNumber(trackingNumber string) {
	o.trackingNumber = trackingNumber
}

// RecordPayment updates the payment status. Recording Paid while the order is
// still Pending auto-advances the lifecycle status to Processing; the
// reservation already held covers the stock, so there is no inventory effect.
func (o *Order) RecordPayment(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	o.paymentStatus = paymentStatus

	if paymentStatus == Paid && o.status == Pending {
		return o.ChangeStatus(Processing)
	}
	return nil
}

// CanDelete checks that the order may be deleted. Deletion is permitted only
// while the order is Pending; afterwards the order is part of the business
// record and can only be cancelled.
func (o *Order) CanDelete() error {
	if o.status != Pending {
		return errs.NewInvalidStateError("delete order", o.status.String())
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(a Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shippingAddress", err)
	}
	o.shippingAddress = a
	return nil
}

func (o *Order) setBillingAddress(a Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("billingAddress", err)
	}
	o.billingAddress = a
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

func (o *Order) setShippingMethod(m ShippingMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.shippingMethod = m
	return nil
}

// setTotals stores the computed money fields after re-verifying them against
// the line items. The items must already be set.
func (o *Order) setTotals(totals Totals) error {
	var itemSum float64
	for _, item := range o.items {
		itemSum += item.Price() * float64(item.Quantity())
	}

	if math.Abs(totals.Subtotal-itemSum) > moneyEpsilon {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%.2f does not match item sum %.2f", totals.Subtotal, itemSum))
	}
	if math.Abs(totals.Total-(totals.Subtotal+totals.ShippingCost+totals.Tax)) > moneyEpsilon {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%.2f does not equal subtotal + shipping + tax", totals.Total))
	}

	o.subtotal = totals.Subtotal
	o.shippingCost = totals.ShippingCost
	o.tax = totals.Tax
	o.totalAmount = totals.Total
	return nil
}
