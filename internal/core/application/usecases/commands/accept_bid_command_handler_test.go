package commands_test

import (
	"sync"
	"testing"

	"swiftbid/internal/core/application/usecases/commands"
	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptBidCommandHandler_Handle(t *testing.T) {
	t.Run("accepts the winner and rejects every live sibling", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		customerID := kernel.NewUUID()
		target := makePendingDelivery(t, customerID)
		store.seedDelivery(target)

		winner := makePendingBid(t, target.ID(), kernel.NewUUID())
		loserOne := makePendingBid(t, target.ID(), kernel.NewUUID())
		loserTwo := makePendingBid(t, target.ID(), kernel.NewUUID())
		withdrawn := makePendingBid(t, target.ID(), kernel.NewUUID())
		require.NoError(t, withdrawn.Withdraw())
		for _, b := range []*bid.Bid{winner, loserOne, loserTwo, withdrawn} {
			store.seedBid(b)
		}

		publisher := &capturingPublisher{}
		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, publisher)
		cmd, err := commands.NewAcceptBidCommand(target.ID(), winner.ID(), customerID)
		require.NoError(t, err)

		matched, won, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, delivery.StatusAccepted, matched.Status())
		require.NotNil(t, matched.AcceptedBidID())
		assert.True(t, matched.AcceptedBidID().IsEqual(winner.ID()))
		assert.Equal(t, bid.StatusAccepted, won.Status())

		assert.Equal(t, bid.StatusAccepted, store.bid(winner.ID()).Status())
		assert.Equal(t, bid.StatusRejected, store.bid(loserOne.ID()).Status())
		assert.Equal(t, bid.StatusRejected, store.bid(loserTwo.ID()).Status())
		assert.Equal(t, bid.StatusWithdrawn, store.bid(withdrawn.ID()).Status())
		assert.Equal(t, delivery.StatusAccepted, store.delivery(target.ID()).Status())

		events := publisher.published()
		require.Len(t, events, 1)
		assert.True(t, events[0].DeliveryID.IsEqual(target.ID()))
		assert.Equal(t, delivery.StatusAccepted, events[0].Status)
		require.NotNil(t, events[0].WinningBidID)
		assert.True(t, events[0].WinningBidID.IsEqual(winner.ID()))
		require.NotNil(t, events[0].WinningRiderID)
		assert.True(t, events[0].WinningRiderID.IsEqual(winner.RiderID()))
	})

	t.Run("second acceptance fails and changes nothing", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		customerID := kernel.NewUUID()
		target := makePendingDelivery(t, customerID)
		store.seedDelivery(target)

		first := makePendingBid(t, target.ID(), kernel.NewUUID())
		second := makePendingBid(t, target.ID(), kernel.NewUUID())
		store.seedBid(first)
		store.seedBid(second)

		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, nil)

		cmd, err := commands.NewAcceptBidCommand(target.ID(), first.ID(), customerID)
		require.NoError(t, err)
		_, _, err = handler.Handle(ctx, cmd)
		require.NoError(t, err)

		cmd, err = commands.NewAcceptBidCommand(target.ID(), second.ID(), customerID)
		require.NoError(t, err)
		_, _, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.True(t, store.delivery(target.ID()).AcceptedBidID().IsEqual(first.ID()))
		assert.Equal(t, bid.StatusRejected, store.bid(second.ID()).Status())
	})

	t.Run("concurrent acceptances on one delivery elect exactly one winner", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		customerID := kernel.NewUUID()
		target := makePendingDelivery(t, customerID)
		store.seedDelivery(target)

		bids := make([]*bid.Bid, 4)
		for i := range bids {
			bids[i] = makePendingBid(t, target.ID(), kernel.NewUUID())
			store.seedBid(bids[i])
		}

		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, nil)

		var wg sync.WaitGroup
		outcomes := make([]error, len(bids))
		for i, b := range bids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, err := commands.NewAcceptBidCommand(target.ID(), b.ID(), customerID)
				if err != nil {
					outcomes[i] = err
					return
				}
				_, _, outcomes[i] = handler.Handle(ctx, cmd)
			}()
		}
		wg.Wait()

		var succeeded int
		for _, err := range outcomes {
			if err == nil {
				succeeded++
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidState)
			}
		}
		assert.Equal(t, 1, succeeded)

		matched := store.delivery(target.ID())
		assert.Equal(t, delivery.StatusAccepted, matched.Status())
		require.NotNil(t, matched.AcceptedBidID())

		var accepted int
		for _, b := range bids {
			if store.bid(b.ID()).Status() == bid.StatusAccepted {
				accepted++
				assert.True(t, matched.AcceptedBidID().IsEqual(b.ID()))
			} else {
				assert.Equal(t, bid.StatusRejected, store.bid(b.ID()).Status())
			}
		}
		assert.Equal(t, 1, accepted)
	})

	t.Run("only the owner may accept", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		target := makePendingDelivery(t, kernel.NewUUID())
		store.seedDelivery(target)
		winner := makePendingBid(t, target.ID(), kernel.NewUUID())
		store.seedBid(winner)

		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, nil)
		cmd, err := commands.NewAcceptBidCommand(target.ID(), winner.ID(), kernel.NewUUID())
		require.NoError(t, err)

		_, _, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAuthorization)
		assert.Equal(t, delivery.StatusPending, store.delivery(target.ID()).Status())
	})

	t.Run("bid from another delivery is refused", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		customerID := kernel.NewUUID()
		target := makePendingDelivery(t, customerID)
		other := makePendingDelivery(t, customerID)
		store.seedDelivery(target)
		store.seedDelivery(other)
		strayBid := makePendingBid(t, other.ID(), kernel.NewUUID())
		store.seedBid(strayBid)

		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, nil)
		cmd, err := commands.NewAcceptBidCommand(target.ID(), strayBid.ID(), customerID)
		require.NoError(t, err)

		_, _, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, delivery.StatusPending, store.delivery(target.ID()).Status())
		assert.Equal(t, bid.StatusPending, store.bid(strayBid.ID()).Status())
	})

	t.Run("withdrawn bid cannot win", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		customerID := kernel.NewUUID()
		target := makePendingDelivery(t, customerID)
		store.seedDelivery(target)
		withdrawn := makePendingBid(t, target.ID(), kernel.NewUUID())
		require.NoError(t, withdrawn.Withdraw())
		store.seedBid(withdrawn)

		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, nil)
		cmd, err := commands.NewAcceptBidCommand(target.ID(), withdrawn.ID(), customerID)
		require.NoError(t, err)

		_, _, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, delivery.StatusPending, store.delivery(target.ID()).Status())
		assert.Nil(t, store.delivery(target.ID()).AcceptedBidID())
	})

	t.Run("unknown delivery fails with not found", func(t *testing.T) {
		ctx := t.Context()
		store := newMemStore()
		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{store}, nil)
		cmd, err := commands.NewAcceptBidCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		_, _, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not constructed command is rejected", func(t *testing.T) {
		handler := commands.NewAcceptBidCommandHandler(memUoWFactory{newMemStore()}, nil)

		_, _, err := handler.Handle(t.Context(), commands.AcceptBidCommand{})

		require.Error(t, err)
	})
}
