// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"

	"swiftbid/internal/core/domain/events"
	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// BidRepoFactory provides access to the bid repository within a transaction.
	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// BidUoW manages transactions for bid-only operations.
	BidUoW interface {
		TxManager
		BidRepoFactory
	}

	// BidUoWFactory creates new bid unit of work instances.
	BidUoWFactory interface {
		Create() BidUoW
	}

	// UoW manages transactions across both delivery and bid aggregates.
	// The accept transaction runs entirely inside one UoW with the delivery
	// row locked, so accepting the winner, rejecting the losing siblings and
	// advancing the delivery land atomically.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		BidRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// publishStatusChange emits a DeliveryStatusChanged event after a committed
// transition. Delivery of the event is best-effort: failures are logged and
// never propagated, so a broker outage cannot fail a business operation that
// already committed.
func publishStatusChange(ctx context.Context, publisher ports.EventPublisher, d *delivery.Delivery) {
	if publisher == nil {
		return
	}

	publish(ctx, publisher, events.NewDeliveryStatusChanged(d))
}

// publishMatch is publishStatusChange for the accept transition, carrying
// the winning rider so push channels can notify both parties.
func publishMatch(ctx context.Context, publisher ports.EventPublisher, d *delivery.Delivery, winner *bid.Bid) {
	if publisher == nil {
		return
	}

	publish(ctx, publisher, events.NewDeliveryMatched(d, winner))
}

func publish(ctx context.Context, publisher ports.EventPublisher, event events.DeliveryStatusChanged) {
	if err := publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish delivery status change",
			"deliveryId", event.DeliveryID.String(),
			"status", event.Status.String(),
			"error", err,
		)
	}
}
