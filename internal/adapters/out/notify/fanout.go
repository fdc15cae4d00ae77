package notify

import (
	"context"
	"errors"

	"swiftbid/internal/core/domain/events"
	"swiftbid/internal/core/ports"
)

// FanOutPublisher forwards every event to each wrapped publisher. All
// publishers are attempted even when one fails; the joined error carries
// every failure.
type FanOutPublisher struct {
	publishers []ports.EventPublisher
}

// NewFanOutPublisher combines the given publishers into one.
func NewFanOutPublisher(publishers ...ports.EventPublisher) *FanOutPublisher {
	return &FanOutPublisher{publishers: publishers}
}

// Publish delivers the event to every wrapped publisher.
func (p *FanOutPublisher) Publish(ctx context.Context, event events.DeliveryStatusChanged) error {
	var errsJoined error
	for _, pub := range p.publishers {
		if err := pub.Publish(ctx, event); err != nil {
			errsJoined = errors.Join(errsJoined, err)
		}
	}

	return errsJoined
}
