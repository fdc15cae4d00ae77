// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves every delivery still open for
// bidding, annotated with how many live bids each has attracted. This is the
// feed riders browse.
type GetAvailableDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for the open delivery feed.
func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// GetAvailableDeliveriesQueryResponse is one open delivery in the rider feed.
type GetAvailableDeliveriesQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	DeliveryType       string
	PickupAddress      string
	DestinationAddress string
	PackageWeight      float64
	PackageDescription string
	PickupTime         time.Time
	Price              float64
	BidCount           int
}
