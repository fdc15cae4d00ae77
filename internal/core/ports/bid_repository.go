package ports

import (
	"context"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for bid aggregates.
type BidRepository interface {
	// Add persists a new bid aggregate to storage.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists changes to an existing bid aggregate.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such bid exists.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetByDelivery retrieves every bid placed against the given delivery,
	// regardless of status.
	GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*bid.Bid, error)

	// GetPendingByDelivery retrieves the live bids still competing for the
	// given delivery. The matching coordinator rejects these when a sibling
	// is accepted.
	GetPendingByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*bid.Bid, error)

	// GetByRider retrieves every bid the given rider has placed, newest
	// first.
	GetByRider(ctx context.Context, riderID kernel.UUID) ([]*bid.Bid, error)

	// GetActiveByDeliveryAndRider retrieves the rider's pending bid on the
	// given delivery, if one exists. Returns errs.ObjectNotFoundError when
	// the rider has no live bid there.
	GetActiveByDeliveryAndRider(ctx context.Context, deliveryID, riderID kernel.UUID) (*bid.Bid, error)
}
