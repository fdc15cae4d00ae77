package commands

import (
	"errors"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrAbortDeliveryCommandIsNotConstructed = errors.New(
	"AbortDeliveryCommand must be created via NewAbortDeliveryCommand constructor",
)

// AbortDeliveryCommand represents the exceptional cancellation of a delivery
// that already has an accepted bid. The normal customer cancel path applies
// only while pending; aborting a match is a distinct, rarer operation.
type AbortDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAbortDeliveryCommand creates a command to abort a matched delivery.
// The caller must be the owning customer.
func NewAbortDeliveryCommand(deliveryID, callerID kernel.UUID) (AbortDeliveryCommand, error) {
	cmd := AbortDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		cmd.setDeliveryID(deliveryID),
		cmd.setCallerID(callerID),
	); err != nil {
		return AbortDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AbortDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAbortDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to abort.
func (c AbortDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CallerID returns the identifier of the customer requesting the abort.
func (c AbortDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AbortDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewFieldError("deliveryId", "must be a valid delivery identifier")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AbortDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return errs.NewFieldError("callerId", "must be a valid caller identifier")
	}

	c.callerID = callerID
	return nil
}
