package commands

import (
	"errors"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a customer's request to withdraw a posted
// delivery before a bid has been accepted.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel a pending delivery.
// The caller must be the owning customer; ownership is enforced by the
// handler against the loaded aggregate.
func NewCancelDeliveryCommand(deliveryID, callerID kernel.UUID) (CancelDeliveryCommand, error) {
	cmd := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		cmd.setDeliveryID(deliveryID),
		cmd.setCallerID(callerID),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CallerID returns the identifier of the customer requesting cancellation.
func (c CancelDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CancelDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewFieldError("deliveryId", "must be a valid delivery identifier")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CancelDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewFieldError("callerId", "must be a valid caller identifier")
	}

	c.callerID = callerID
	return nil
}
