package commands

import (
	"context"
	"errors"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/pkg/errs"
)

// SubmitBidCommandHandler handles bid placement. A bid is only accepted
// against a delivery that is still pending, and a rider may hold at most one
// live bid per delivery; a second attempt fails with DuplicateBidError until
// the first bid is withdrawn.
type SubmitBidCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitBidCommandHandler creates a handler for bid submission.
func NewSubmitBidCommandHandler(uowFactory UoWFactory) SubmitBidCommandHandler {
	return SubmitBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bid submission command.
// Verifies the target delivery is pending and the rider has no live bid on
// it, then persists the new bid. The delivery row is read under a write lock,
// so a concurrent acceptance either commits first (and this submission fails
// the pending check) or waits for the insert to commit (and rejects the new
// bid along with the other losing siblings). Either way no pending bid can
// land on a matched delivery.
func (h SubmitBidCommandHandler) Handle(ctx context.Context, cmd SubmitBidCommand) error {
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

	target, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if target.Status() != delivery.StatusPending {
		return errs.NewInvalidStateError(
			"delivery", target.Status().String(), "bid submission")
	}

	bidRepo := uow.BidRepository()
	existing, err := bidRepo.GetActiveByDeliveryAndRider(ctx, cmd.DeliveryID(), cmd.RiderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewDuplicateBidError(
			cmd.DeliveryID().String(), cmd.RiderID().String(), existing.ID().String())
	}

	aggregate, err := bid.NewBid(
		cmd.BidID(),
		cmd.DeliveryID(),
		cmd.RiderID(),
		cmd.Amount(),
		cmd.EstimatedTime(),
		cmd.Message(),
	)
	if err != nil {
		return err
	}

	if err = bidRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
