package commands

import (
	"context"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/ports"
	"swiftbid/internal/pkg/errs"
)

// AcceptBidCommandHandler is the matching coordinator. It performs the one
// transition that pairs a delivery with a rider:
//
//  1. lock the delivery row
//  2. verify the caller owns the delivery and it is still pending
//  3. verify the selected bid is pending and belongs to the delivery
//  4. accept the winner, reject every other pending bid, advance the
//     delivery to accepted with the winning bid recorded
//  5. commit, then publish the status change
//
// Everything between Begin and Commit is one transaction: a concurrent
// accept on the same delivery blocks on the row lock and then fails the
// pending-status check, so at most one bid ever wins. Withdrawn bids are
// left untouched; only live siblings are rejected.
type AcceptBidCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptBidCommandHandler creates the matching coordinator handler.
func NewAcceptBidCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the accept command and returns the matched delivery and
// the winning bid.
func (h AcceptBidCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptBidCommand,
) (*delivery.Delivery, *bid.Bid, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	target, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, nil, err
	}

	if !target.IsOwnedBy(cmd.CallerID()) {
		return nil, nil, errs.NewAuthorizationError(
			cmd.CallerID().String(), "accept a bid on", "delivery", cmd.DeliveryID().String())
	}

	bidRepo := uow.BidRepository()
	winner, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return nil, nil, err
	}

	// A bid attached to a different delivery does not exist from this
	// delivery's point of view.
	if !winner.BelongsToDelivery(cmd.DeliveryID()) {
		return nil, nil, errs.NewObjectNotFoundError("bid", cmd.BidID().String())
	}

	if err = target.AcceptBid(winner.ID()); err != nil {
		return nil, nil, err
	}
	if err = winner.Accept(); err != nil {
		return nil, nil, err
	}

	siblings, err := bidRepo.GetPendingByDelivery(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, nil, err
	}

	for _, sibling := range siblings {
		if sibling.IsEqual(winner) {
			continue
		}
		if err = sibling.Reject(); err != nil {
			return nil, nil, err
		}
		if err = bidRepo.Update(ctx, sibling); err != nil {
			return nil, nil, err
		}
	}

	if err = bidRepo.Update(ctx, winner); err != nil {
		return nil, nil, err
	}
	if err = deliveryRepo.Update(ctx, target); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	publishMatch(ctx, h.publisher, target, winner)
	return target, winner, nil
}
