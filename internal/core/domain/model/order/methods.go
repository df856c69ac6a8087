package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	CreditCard   PaymentMethod = "credit_card"
	PayPal       PaymentMethod = "paypal"
	BankTransfer PaymentMethod = "bank_transfer"
)

// Validate checks that the payment method is one of the allowed values.
func (m PaymentMethod) Validate() error {
	switch m {
	case CreditCard, PayPal, BankTransfer:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", string(m)))
}

// ShippingMethod selects the delivery speed and thereby the shipping cost.
type ShippingMethod string

const (
	Standard  ShippingMethod = "standard"
	Express   ShippingMethod = "express"
	Overnight ShippingMethod = "overnight"
)

// Validate checks that the shipping method is one of the allowed values.
func (m ShippingMethod) Validate() error {
	switch m {
	case Standard, Express, Overnight:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("shippingMethod",
		fmt.Errorf("%q is not a valid shipping method", string(m)))
}
