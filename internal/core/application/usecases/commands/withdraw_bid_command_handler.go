package commands

import (
	"context"

	"swiftbid/internal/pkg/errs"
)

// WithdrawBidCommandHandler handles bid withdrawal. Only the owning rider
// may withdraw, and only while the bid is still pending; accepted, rejected
// and withdrawn bids are immutable.
type WithdrawBidCommandHandler struct {
	uowFactory BidUoWFactory
}

// NewWithdrawBidCommandHandler creates a handler for bid withdrawal.
func NewWithdrawBidCommandHandler(uowFactory BidUoWFactory) WithdrawBidCommandHandler {
	return WithdrawBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
func (h WithdrawBidCommandHandler) Handle(ctx context.Context, cmd WithdrawBidCommand) error {
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

	bidRepo := uow.BidRepository()
	aggregate, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.CallerID()) {
		return errs.NewAuthorizationError(
			cmd.CallerID().String(), "withdraw", "bid", cmd.BidID().String())
	}

	if err = aggregate.Withdraw(); err != nil {
		return err
	}

	if err = bidRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
