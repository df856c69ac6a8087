package services

import (
	"math"

	"storefront/internal/core/domain/model/order"
)

// Shipping rates per method. An unrecognized method falls back to the
// standard rate rather than failing the order.
const (
	standardShippingCost  = 5.99
	expressShippingCost   = 15.99
	overnightShippingCost = 29.99
)

// taxRate is the flat-rate sales tax applied to the subtotal.
// No jurisdiction logic: one rate for the whole storefront.
const taxRate = 0.07

// PricingCalculator is a domain service that computes an order's money
// fields from its line items and shipping method.
//
// The calculation is a pure function: no side effects, idempotent, and the
// result is independent of the ordering of the items (addition of the
// per-item products is the only aggregation).
//
// Example usage:
//
//	calc := services.NewPricingCalculator()
//	totals := calc.Calculate(items, order.Express)
//	// totals.Total == totals.Subtotal + totals.ShippingCost + totals.Tax
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate computes the totals for the given items and shipping method:
//
//	subtotal = Σ price_i × quantity_i
//	shippingCost = fixed lookup by method (unknown method → standard rate)
//	tax = round(subtotal × 0.07, 2)
//	total = subtotal + shippingCost + tax
//
// Subtotal and total are rounded to 2 decimals to keep the money fields
// exact after float64 accumulation.
func (c PricingCalculator) Calculate(items []order.Item, method order.ShippingMethod) order.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price() * float64(item.Quantity())
	}
	subtotal = roundMoney(subtotal)

	shippingCost := c.shippingCost(method)
	tax := roundMoney(subtotal * taxRate)

	return order.Totals{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Tax:          tax,
		Total:        roundMoney(subtotal + shippingCost + tax),
	}
}

// shippingCost returns the fixed rate for the method.
func (c PricingCalculator) shippingCost(method order.ShippingMethod) float64 {
	switch method {
	case order.Express:
		return expressShippingCost
	case order.Overnight:
		return overnightShippingCost
	case order.Standard:
		return standardShippingCost
	}
	return standardShippingCost
}

// roundMoney rounds to 2 decimal places, half away from zero.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
