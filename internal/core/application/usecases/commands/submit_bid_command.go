package commands

import (
	"errors"
	"fmt"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrSubmitBidCommandIsNotConstructed = errors.New(
	"SubmitBidCommand must be created via NewSubmitBidCommand constructor",
)

// SubmitBidCommand represents a rider's offer to fulfill a pending delivery.
type SubmitBidCommand struct { //nolint:recvcheck //using for validation
	bidID         kernel.UUID
	deliveryID    kernel.UUID
	riderID       kernel.UUID
	amount        float64
	estimatedTime int
	message       string

	guard guard.ConstructorGuard
}

// NewSubmitBidCommand creates a command to place a bid. The amount must be
// positive currency, the estimated time positive minutes; the message is
// optional. All violations are reported together.
func NewSubmitBidCommand(
	bidID kernel.UUID,
	deliveryID kernel.UUID,
	riderID kernel.UUID,
	amount float64,
	estimatedTime int,
	message string,
) (SubmitBidCommand, error) {
	cmd := SubmitBidCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		cmd.setBidID(bidID),
		cmd.setDeliveryID(deliveryID),
		cmd.setRiderID(riderID),
		cmd.setAmount(amount),
		cmd.setEstimatedTime(estimatedTime),
	); err != nil {
		return SubmitBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBidCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBidCommandIsNotConstructed)
}

// BidID returns the identifier the new bid will be created under.
func (c SubmitBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// DeliveryID returns the delivery being bid on.
func (c SubmitBidCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RiderID returns the bidding rider's identifier.
func (c SubmitBidCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Amount returns the offered amount.
func (c SubmitBidCommand) Amount() float64 {
	return c.amount
}

// EstimatedTime returns the estimated fulfillment time in minutes.
func (c SubmitBidCommand) EstimatedTime() int {
	return c.estimatedTime
}

// Message returns the optional free-text message.
func (c SubmitBidCommand) Message() string {
	return c.message
}

func (c *SubmitBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *SubmitBidCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewFieldError("deliveryId", "must be a valid delivery identifier")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *SubmitBidCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewFieldError("riderId", "must be a valid rider identifier")
	}

	c.riderID = riderID
	return nil
}

func (c *SubmitBidCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewFieldError("amount", fmt.Sprintf("%g is not greater than 0", amount))
	}

	c.amount = amount
	return nil
}

func (c *SubmitBidCommand) setEstimatedTime(estimatedTime int) error {
	if estimatedTime <= 0 {
		return errs.NewFieldError("estimatedTime",
			fmt.Sprintf("%d is not greater than 0", estimatedTime))
	}

	c.estimatedTime = estimatedTime
	return nil
}
