package commands

import (
	"context"

	"swiftbid/internal/core/ports"
)

// StartDeliveryCommandHandler advances a matched delivery from accepted to
// in_progress when the rider picks the package up.
type StartDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewStartDeliveryCommandHandler creates a handler for starting fulfillment.
func NewStartDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start command.
// Locks the delivery row, verifies the caller is a party to the match, then
// advances the status. Publishes the status change after commit.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = authorizeMatchParty(ctx, uow, aggregate, cmd.CallerID(), "start"); err != nil {
		return err
	}

	if err = aggregate.Start(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(ctx, h.publisher, aggregate)
	return nil
}
