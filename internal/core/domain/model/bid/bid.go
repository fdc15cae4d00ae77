package bid

import (
	"errors"
	"fmt"
	"time"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
)

// ErrBidIsNotConstructed is returned when a Bid instance was not created
// through NewBid or RestoreBid.
var ErrBidIsNotConstructed = errors.New(
	"Bid must be created via NewBid or RestoreBid constructor")

// Bid is a rider's offer to fulfill a delivery request: an amount, an
// estimated time in minutes, and an optional message to the customer.
//
// Invariants:
//   - amount and estimated time are positive
//   - the parent delivery and the bidding rider are immutable
//   - once terminal (accepted, rejected, withdrawn) the bid never changes
type Bid struct {
	id            kernel.UUID
	deliveryID    kernel.UUID
	riderID       kernel.UUID
	amount        float64
	estimatedTime int
	message       string
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewBid creates a live bid against a delivery request. The new bid starts
// in pending status. The amount must be positive currency and the estimated
// time positive minutes; all violations are reported together. The message
// is optional.
func NewBid(
	id kernel.UUID,
	deliveryID kernel.UUID,
	riderID kernel.UUID,
	amount float64,
	estimatedTime int,
	message string,
) (*Bid, error) {
	b := &Bid{
		message:       message,
		status:        StatusPending,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errs.JoinValidation(
		b.setID(id),
		b.setDeliveryID(deliveryID),
		b.setRiderID(riderID),
		b.setAmount(amount),
		b.setEstimatedTime(estimatedTime),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBid reconstructs a bid from persistence with its stored status and
// creation time.
func RestoreBid(
	id kernel.UUID,
	deliveryID kernel.UUID,
	riderID kernel.UUID,
	amount float64,
	estimatedTime int,
	message string,
	status Status,
	createdAt time.Time,
) (*Bid, error) {
	b := &Bid{
		message:       message,
		isConstructed: true,
	}

	if err := errs.JoinValidation(
		b.setID(id),
		b.setDeliveryID(deliveryID),
		b.setRiderID(riderID),
		b.setAmount(amount),
		b.setEstimatedTime(estimatedTime),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.status = status
	b.createdAt = createdAt
	return b, nil
}

// Validate ensures the Bid instance was properly constructed.
func (b *Bid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBidIsNotConstructed
	}
	return nil
}

// IsEqual compares two bids by their unique identifiers.
func (b *Bid) IsEqual(other *Bid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// DeliveryID returns the identifier of the delivery this bid targets.
func (b *Bid) DeliveryID() kernel.UUID {
	return b.deliveryID
}

// RiderID returns the bidding rider's identifier.
func (b *Bid) RiderID() kernel.UUID {
	return b.riderID
}

// BelongsToDelivery reports whether the bid targets the given delivery.
func (b *Bid) BelongsToDelivery(deliveryID kernel.UUID) bool {
	return b.deliveryID.IsEqual(deliveryID)
}

// IsOwnedBy reports whether the given rider placed this bid.
func (b *Bid) IsOwnedBy(riderID kernel.UUID) bool {
	return b.riderID.IsEqual(riderID)
}

// Amount returns the offered amount.
func (b *Bid) Amount() float64 {
	return b.amount
}

// EstimatedTime returns the estimated fulfillment time in minutes.
func (b *Bid) EstimatedTime() int {
	return b.estimatedTime
}

// Message returns the optional free-text message, empty if none.
func (b *Bid) Message() string {
	return b.message
}

// Status returns the current lifecycle status.
func (b *Bid) Status() Status {
	return b.status
}

// CreatedAt returns when the bid was placed.
func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

// Accept marks the bid as the winner. Only legal while pending; only the
// matching coordinator calls this, inside the accept transaction.
func (b *Bid) Accept() error {
	newStatus, err := b.status.Accept()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Reject marks the bid as a losing sibling of an accepted bid. Only legal
// while pending; withdrawn bids are left untouched by acceptance.
func (b *Bid) Reject() error {
	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Withdraw pulls the bid at the rider's request. Only legal while pending.
func (b *Bid) Withdraw() error {
	newStatus, err := b.status.Withdraw()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewFieldError("deliveryId", "must be a valid delivery identifier")
	}
	b.deliveryID = deliveryID
	return nil
}

func (b *Bid) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewFieldError("riderId", "must be a valid rider identifier")
	}
	b.riderID = riderID
	return nil
}

func (b *Bid) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewFieldError("amount", fmt.Sprintf("%g is not greater than 0", amount))
	}
	b.amount = amount
	return nil
}

func (b *Bid) setEstimatedTime(estimatedTime int) error {
	if estimatedTime <= 0 {
		return errs.NewFieldError("estimatedTime", fmt.Sprintf("%d is not greater than 0", estimatedTime))
	}
	b.estimatedTime = estimatedTime
	return nil
}
