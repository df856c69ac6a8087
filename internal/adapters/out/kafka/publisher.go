// Package kafka publishes order lifecycle events to a Kafka topic.
// Publishing happens after the database transaction has committed, so a
// failed write is logged and reported but never rolls back the mutation.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderChangedEvent is the wire format of an order lifecycle event.
type OrderChangedEvent struct {
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   float64   `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderKafkaPublisher implements ports.OrderEventPublisher on top of a
// kafka-go writer. Messages are keyed by order id so all events of one order
// land in the same partition, in order.
type OrderKafkaPublisher struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewOrderKafkaPublisher creates a publisher writing to the given brokers and topic.
func NewOrderKafkaPublisher(brokers []string, topic string, log *slog.Logger) *OrderKafkaPublisher {
	return &OrderKafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		log: log,
	}
}

// PublishOrderChanged publishes one lifecycle event. Failures are logged with
// enough context to replay the event by hand.
func (p *OrderKafkaPublisher) PublishOrderChanged(
	ctx context.Context,
	change ports.OrderChange,
	aggregate *order.Order,
) error {
	event := OrderChangedEvent{
		EventType:     string(change),
		OrderID:       aggregate.ID().String(),
		UserID:        aggregate.UserID().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		TotalAmount:   aggregate.TotalAmount(),
		OccurredAt:    time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		p.log.Warn("failed to publish order event",
			"event_type", event.EventType,
			"order_id", event.OrderID,
			"error", err)
		return err
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderKafkaPublisher) Close() error {
	return p.writer.Close()
}
