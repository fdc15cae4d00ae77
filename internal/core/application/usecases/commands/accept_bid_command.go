package commands

import (
	"errors"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand represents a customer selecting the winning bid for their
// delivery.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	bidID      kernel.UUID
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command to accept a bid. The caller must be
// the delivery's owning customer; ownership is enforced by the handler.
func NewAcceptBidCommand(deliveryID, bidID, callerID kernel.UUID) (AcceptBidCommand, error) {
	cmd := AcceptBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		cmd.setDeliveryID(deliveryID),
		cmd.setBidID(bidID),
		cmd.setCallerID(callerID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// DeliveryID returns the delivery being matched.
func (c AcceptBidCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// BidID returns the bid the customer selected.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// CallerID returns the identifier of the accepting customer.
func (c AcceptBidCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AcceptBidCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewFieldError("deliveryId", "must be a valid delivery identifier")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AcceptBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return errs.NewFieldError("bidId", "must be a valid bid identifier")
	}

	c.bidID = bidID
	return nil
}

func (c *AcceptBidCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewFieldError("callerId", "must be a valid caller identifier")
	}

	c.callerID = callerID
	return nil
}
