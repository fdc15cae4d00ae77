// Package ports defines the repository and messaging interfaces between the
// application core and its adapters. Implementations live under
// internal/adapters/out.
package ports

import (
	"context"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery request
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and takes a row-level write lock on
	// it for the remainder of the current transaction. Concurrent matching
	// attempts against the same delivery serialize on this lock; deliveries
	// with different identifiers proceed independently.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllPendingOlderThan retrieves pending deliveries whose pickup time
	// passed more than the given number of minutes ago. Used by the stale
	// delivery sweep.
	GetAllPendingOlderThan(ctx context.Context, minutes int) ([]*delivery.Delivery, error)

	// GetByCustomer retrieves all deliveries created by the given customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*delivery.Delivery, error)
}
