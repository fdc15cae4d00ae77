// Package notify contains the outbound notification adapters. Each adapter
// implements ports.EventPublisher; the composition root combines them with
// FanOutPublisher so every post-commit event reaches Kafka and any connected
// WebSocket clients.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"swiftbid/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

// statusChangedMessage is the Kafka wire format for delivery status events.
type statusChangedMessage struct {
	Event          string    `json:"event"`
	DeliveryID     string    `json:"delivery_id"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	WinningBidID   *string   `json:"winning_bid_id,omitempty"`
	WinningRiderID *string   `json:"winning_rider_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newStatusChangedMessage(event events.DeliveryStatusChanged) statusChangedMessage {
	msg := statusChangedMessage{
		Event:      event.Name(),
		DeliveryID: event.DeliveryID.String(),
		CustomerID: event.CustomerID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.WinningBidID != nil {
		id := event.WinningBidID.String()
		msg.WinningBidID = &id
	}
	if event.WinningRiderID != nil {
		id := event.WinningRiderID.String()
		msg.WinningRiderID = &id
	}
	return msg
}

// KafkaPublisher writes delivery status events to a Kafka topic. Messages
// are keyed by delivery ID so all events for one delivery land on the same
// partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to the given brokers and
// topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})

	return &KafkaPublisher{writer: w}
}

// Publish serializes the event and writes it to the topic. The write is
// bounded by a short timeout so a slow broker cannot stall the request that
// triggered the event.
func (p *KafkaPublisher) Publish(ctx context.Context, event events.DeliveryStatusChanged) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	msg := newStatusChangedMessage(event)

	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.DeliveryID),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
