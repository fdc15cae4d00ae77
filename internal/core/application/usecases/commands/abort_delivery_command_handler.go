package commands

import (
	"context"

	"swiftbid/internal/core/ports"
	"swiftbid/internal/pkg/errs"
)

// AbortDeliveryCommandHandler cancels a delivery that already has an
// accepted bid. The delivery moves to cancelled; the accepted bid keeps its
// accepted status as the record of the broken match.
type AbortDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewAbortDeliveryCommandHandler creates a handler for aborting matched
// deliveries.
func NewAbortDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) AbortDeliveryCommandHandler {
	return AbortDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the abort command.
func (h AbortDeliveryCommandHandler) Handle(ctx context.Context, cmd AbortDeliveryCommand) error {
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

	if !aggregate.IsOwnedBy(cmd.CallerID()) {
		return errs.NewAuthorizationError(
			cmd.CallerID().String(), "abort", "delivery", cmd.DeliveryID().String())
	}

	if err = aggregate.Cancel(); err != nil {
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
