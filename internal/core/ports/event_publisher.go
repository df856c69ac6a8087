package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderChange names the lifecycle mutation that produced an event.
type OrderChange string

const (
	OrderCreated        OrderChange = "order_created"
	OrderStatusChanged  OrderChange = "order_status_changed"
	OrderPaymentChanged OrderChange = "order_payment_changed"
	OrderDeleted        OrderChange = "order_deleted"
)

// OrderEventPublisher publishes order lifecycle events to interested
// consumers after the mutation has been committed.
//
// Publishing is best effort: implementations report failures to the caller,
// but a failed publish never undoes the committed mutation.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, change OrderChange, aggregate *order.Order) error
}
