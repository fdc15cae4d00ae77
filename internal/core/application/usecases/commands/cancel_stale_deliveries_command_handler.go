package commands

import (
	"context"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/ports"
)

// CancelStaleDeliveriesCommandHandler applies the staleness policy: pending
// deliveries whose pickup time passed more than the grace period ago are
// cancelled in one sweep. Deliveries in any other status are never touched.
type CancelStaleDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelStaleDeliveriesCommandHandler creates a handler for the stale
// delivery sweep.
func NewCancelStaleDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) CancelStaleDeliveriesCommandHandler {
	return CancelStaleDeliveriesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the sweep and returns the number of deliveries cancelled.
func (h CancelStaleDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStaleDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	stale, err := deliveryRepo.GetAllPendingOlderThan(ctx, cmd.GraceMinutes())
	if err != nil {
		return 0, err
	}

	// The candidate list is read without locks, so each row is re-read
	// under a write lock before cancelling. A delivery accepted after the
	// list was taken is no longer pending and is skipped.
	cancelled := make([]*delivery.Delivery, 0, len(stale))
	for _, candidate := range stale {
		aggregate, lockErr := deliveryRepo.GetForUpdate(ctx, candidate.ID())
		if lockErr != nil {
			return 0, lockErr
		}
		if aggregate.Status() != delivery.StatusPending {
			continue
		}

		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}
		if err = deliveryRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		cancelled = append(cancelled, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range cancelled {
		publishStatusChange(ctx, h.publisher, aggregate)
	}
	return len(cancelled), nil
}
