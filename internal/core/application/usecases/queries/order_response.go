// Package queries contains the read side of the application: each query is a
// constructor-guarded request object, and each handler reads the database
// directly with SQL instead of going through the domain repositories.
package queries

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// OrderResponse is the read model for a single order, shared by the
// single-order and order-list queries.
type OrderResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Items           []ItemResponse
	ShippingAddress AddressResponse
	BillingAddress  AddressResponse
	PaymentMethod   string
	ShippingMethod  string
	Subtotal        float64
	ShippingCost    float64
	Tax             float64
	TotalAmount     float64
	Status          string
	PaymentStatus   string
	TrackingNumber  string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemResponse is one order line with the product snapshot taken at order time.
type ItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Price     float64
	Quantity  int
	Variant   string
}

// AddressResponse is a postal address as stored on the order.
type AddressResponse struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}
