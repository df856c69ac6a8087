// Package services provides domain services for the storefront system:
// business logic that operates on domain objects but does not naturally
// belong to a single aggregate root.
//
// The package currently contains the PricingCalculator, the pure function
// that turns a set of line items and a shipping method into an order's
// subtotal, shipping cost, tax, and total.
package services
