// Package events defines the domain events published when aggregates reach
// externally interesting states. Handlers build and publish an event only
// after its transaction commits, so subscribers never see rolled-back state.
package events

import (
	"time"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
)

// DeliveryStatusChanged is published whenever a delivery request transitions
// between lifecycle statuses. WinningBidID is set only once a bid has been
// accepted; WinningRiderID additionally identifies the matched rider on the
// accept transition, so push channels can reach both parties.
type DeliveryStatusChanged struct {
	DeliveryID     kernel.UUID
	CustomerID     kernel.UUID
	Status         delivery.Status
	WinningBidID   *kernel.UUID
	WinningRiderID *kernel.UUID
	OccurredAt     time.Time
}

// NewDeliveryStatusChanged captures the delivery's state at the moment of
// transition.
func NewDeliveryStatusChanged(d *delivery.Delivery) DeliveryStatusChanged {
	return DeliveryStatusChanged{
		DeliveryID:   d.ID(),
		CustomerID:   d.CustomerID(),
		Status:       d.Status(),
		WinningBidID: d.AcceptedBidID(),
		OccurredAt:   time.Now(),
	}
}

// NewDeliveryMatched captures the accept transition together with the
// winning bid's rider.
func NewDeliveryMatched(d *delivery.Delivery, winner *bid.Bid) DeliveryStatusChanged {
	event := NewDeliveryStatusChanged(d)
	riderID := winner.RiderID()
	event.WinningRiderID = &riderID
	return event
}

// Name returns the event's wire name.
func (DeliveryStatusChanged) Name() string {
	return "delivery.status_changed"
}
