package http

import (
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/generated/servers"
)

// orderFromAggregate converts a freshly mutated order aggregate to its API
// shape. Timestamps are left unset; they belong to the read side.
func orderFromAggregate(aggregate *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Variant:   item.Variant(),
		}
	}

	return servers.Order{
		Id:              aggregate.ID().Bytes(),
		UserId:          aggregate.UserID().Bytes(),
		Items:           items,
		ShippingAddress: addressFromDomain(aggregate.ShippingAddress()),
		BillingAddress:  addressFromDomain(aggregate.BillingAddress()),
		PaymentMethod:   string(aggregate.PaymentMethod()),
		ShippingMethod:  string(aggregate.ShippingMethod()),
		Subtotal:        aggregate.Subtotal(),
		ShippingCost:    aggregate.ShippingCost(),
		Tax:             aggregate.Tax(),
		TotalAmount:     aggregate.TotalAmount(),
		Status:          aggregate.Status().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Notes:           aggregate.Notes(),
	}
}

// orderFromReadModel converts a query-side order to its API shape.
func orderFromReadModel(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
		}
	}

	createdAt := resp.CreatedAt
	updatedAt := resp.UpdatedAt

	return servers.Order{
		Id:              resp.ID.Bytes(),
		UserId:          resp.UserID.Bytes(),
		Items:           items,
		ShippingAddress: addressFromResponse(resp.ShippingAddress),
		BillingAddress:  addressFromResponse(resp.BillingAddress),
		PaymentMethod:   resp.PaymentMethod,
		ShippingMethod:  resp.ShippingMethod,
		Subtotal:        resp.Subtotal,
		ShippingCost:    resp.ShippingCost,
		Tax:             resp.Tax,
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		TrackingNumber:  resp.TrackingNumber,
		Notes:           resp.Notes,
		CreatedAt:       &createdAt,
		UpdatedAt:       &updatedAt,
	}
}

// productFromAggregate converts a product aggregate to its API shape.
func productFromAggregate(aggregate *product.Product) servers.Product {
	return servers.Product{
		Id:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Quantity:    aggregate.Quantity(),
		Reserved:    aggregate.Reserved(),
		Available:   aggregate.Available(),
	}
}

func addressFromDomain(a order.Address) servers.Address {
	addr := servers.Address{
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
	if state := a.State(); state != "" {
		addr.State = &state
	}
	return addr
}

func addressFromResponse(a queries.AddressResponse) servers.Address {
	addr := servers.Address{
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.State != "" {
		state := a.State
		addr.State = &state
	}
	return addr
}
