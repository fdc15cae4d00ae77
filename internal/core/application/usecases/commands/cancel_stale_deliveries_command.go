package commands

import (
	"errors"
	"fmt"

	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrCancelStaleDeliveriesCommandIsNotConstructed = errors.New(
	"CancelStaleDeliveriesCommand must be created via NewCancelStaleDeliveriesCommand constructor",
)

// CancelStaleDeliveriesCommand sweeps pending deliveries whose pickup time
// passed more than a grace period ago and cancels them. Staleness is an
// explicit, caller-applied policy: nothing in the model expires a delivery on
// its own.
type CancelStaleDeliveriesCommand struct { //nolint:recvcheck //using for validation
	graceMinutes int

	guard guard.ConstructorGuard
}

// NewCancelStaleDeliveriesCommand creates a sweep command with the given
// grace period in minutes.
func NewCancelStaleDeliveriesCommand(graceMinutes int) (CancelStaleDeliveriesCommand, error) {
	cmd := CancelStaleDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setGraceMinutes(graceMinutes); err != nil {
		return CancelStaleDeliveriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleDeliveriesCommandIsNotConstructed)
}

// GraceMinutes returns the grace period in minutes past the pickup time.
func (c CancelStaleDeliveriesCommand) GraceMinutes() int {
	return c.graceMinutes
}

func (c *CancelStaleDeliveriesCommand) setGraceMinutes(graceMinutes int) error {
	if graceMinutes <= 0 {
		return errs.NewFieldError("graceMinutes",
			fmt.Sprintf("%d is not greater than 0", graceMinutes))
	}

	c.graceMinutes = graceMinutes
	return nil
}
