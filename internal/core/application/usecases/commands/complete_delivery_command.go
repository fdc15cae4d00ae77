package commands

import (
	"errors"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents confirming a delivery in progress as
// fulfilled.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete fulfillment. The
// caller must be the winning rider or the owning customer.
func NewCompleteDeliveryCommand(deliveryID, callerID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		cmd.setDeliveryID(deliveryID),
		cmd.setCallerID(callerID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CallerID returns the caller's identifier.
func (c CompleteDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewFieldError("deliveryId", "must be a valid delivery identifier")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewFieldError("callerId", "must be a valid caller identifier")
	}

	c.callerID = callerID
	return nil
}
