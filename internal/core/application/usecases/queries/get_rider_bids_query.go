package queries

import (
	"errors"
	"time"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrGetRiderBidsQueryIsNotConstructed = errors.New(
	"GetRiderBidsQuery must be created via NewGetRiderBidsQuery constructor",
)

// GetRiderBidsQuery retrieves every bid a rider has placed, with the current
// status of each and a summary of the parent delivery, so the rider can see
// which offers are still live, which won, and which lost.
type GetRiderBidsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderBidsQuery creates a query for the given rider's bids.
func NewGetRiderBidsQuery(riderID kernel.UUID) (GetRiderBidsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderBidsQuery{},
			errs.NewFieldError("riderId", "must be a valid rider identifier")
	}

	return GetRiderBidsQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderBidsQueryIsNotConstructed)
}

// RiderID returns the rider whose bids are requested.
func (q GetRiderBidsQuery) RiderID() kernel.UUID {
	return q.riderID
}

// GetRiderBidsQueryResponse is one of the rider's bids joined with its
// parent delivery.
type GetRiderBidsQueryResponse struct {
	ID                 kernel.UUID
	Amount             float64
	EstimatedTime      int
	Message            string
	Status             string
	CreatedAt          time.Time
	DeliveryID         kernel.UUID
	DeliveryStatus     string
	DeliveryType       string
	PickupAddress      string
	DestinationAddress string
	PickupTime         time.Time
	Price              float64
}
