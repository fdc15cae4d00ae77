package commands

import (
	"context"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/ports"
	"swiftbid/internal/pkg/errs"
)

// CancelDeliveryCommandHandler handles customer-initiated cancellation.
// Only the owning customer may cancel, and only while the delivery is still
// pending; once a bid has been accepted the exceptional abort path applies
// instead.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Locks the delivery row, verifies ownership and pending status, then
// transitions to cancelled. Publishes the status change after commit.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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
			cmd.CallerID().String(), "cancel", "delivery", cmd.DeliveryID().String())
	}

	if aggregate.Status() != delivery.StatusPending {
		return errs.NewInvalidStateError(
			"delivery", aggregate.Status().String(), delivery.StatusCancelled.String())
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
