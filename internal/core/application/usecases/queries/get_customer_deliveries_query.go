package queries

import (
	"errors"
	"time"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrGetCustomerDeliveriesQueryIsNotConstructed = errors.New(
	"GetCustomerDeliveriesQuery must be created via NewGetCustomerDeliveriesQuery constructor",
)

// GetCustomerDeliveriesQuery retrieves every delivery a customer has posted,
// with the bids visible to them: the full live bid list while the delivery
// is still pending, and only the winning bid once matched.
type GetCustomerDeliveriesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerDeliveriesQuery creates a query for the given customer's
// deliveries.
func NewGetCustomerDeliveriesQuery(customerID kernel.UUID) (GetCustomerDeliveriesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerDeliveriesQuery{},
			errs.NewFieldError("customerId", "must be a valid customer identifier")
	}

	return GetCustomerDeliveriesQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerDeliveriesQueryIsNotConstructed)
}

// CustomerID returns the customer whose deliveries are requested.
func (q GetCustomerDeliveriesQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerBidResponse is a bid as shown to the delivery's owner.
type CustomerBidResponse struct {
	ID            kernel.UUID
	RiderID       kernel.UUID
	Amount        float64
	EstimatedTime int
	Message       string
	Status        string
	CreatedAt     time.Time
}

// GetCustomerDeliveriesQueryResponse is one of the customer's deliveries
// together with its visible bids.
type GetCustomerDeliveriesQueryResponse struct {
	ID                 kernel.UUID
	DeliveryType       string
	PickupAddress      string
	DestinationAddress string
	PackageWeight      float64
	PackageDescription string
	PickupTime         time.Time
	Price              float64
	PaymentStatus      string
	Status             string
	AcceptedBidID      *kernel.UUID
	Bids               []CustomerBidResponse
}
