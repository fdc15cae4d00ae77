package commands

import (
	"context"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
)

// authorizeMatchParty allows an operation on a matched delivery only for the
// two parties to the match: the owning customer or the winning rider. The
// winning rider is resolved through the delivery's accepted bid within the
// current transaction.
func authorizeMatchParty(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
	callerID kernel.UUID,
	action string,
) error {
	if aggregate.IsOwnedBy(callerID) {
		return nil
	}

	if acceptedBidID := aggregate.AcceptedBidID(); acceptedBidID != nil {
		winner, err := uow.BidRepository().Get(ctx, *acceptedBidID)
		if err != nil {
			return err
		}
		if winner.IsOwnedBy(callerID) {
			return nil
		}
	}

	return errs.NewAuthorizationError(
		callerID.String(), action, "delivery", aggregate.ID().String())
}
