package commands

import (
	"errors"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrWithdrawBidCommandIsNotConstructed = errors.New(
	"WithdrawBidCommand must be created via NewWithdrawBidCommand constructor",
)

// WithdrawBidCommand represents a rider pulling their own live bid.
type WithdrawBidCommand struct { //nolint:recvcheck //using for validation
	bidID    kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawBidCommand creates a command to withdraw a bid. The caller must
// be the rider who placed it; ownership is enforced by the handler.
func NewWithdrawBidCommand(bidID, callerID kernel.UUID) (WithdrawBidCommand, error) {
	cmd := WithdrawBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		cmd.setBidID(bidID),
		cmd.setCallerID(callerID),
	); err != nil {
		return WithdrawBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawBidCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawBidCommandIsNotConstructed)
}

// BidID returns the bid to withdraw.
func (c WithdrawBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// CallerID returns the identifier of the rider requesting withdrawal.
func (c WithdrawBidCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *WithdrawBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return errs.NewFieldError("bidId", "must be a valid bid identifier")
	}

	c.bidID = bidID
	return nil
}

func (c *WithdrawBidCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewFieldError("callerId", "must be a valid caller identifier")
	}

	c.callerID = callerID
	return nil
}
