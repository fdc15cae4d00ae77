package commands_test

import (
	"context"
	"sync"
	"time"

	"swiftbid/internal/core/application/usecases/commands"
	"swiftbid/internal/core/domain/events"
	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/core/ports"
	"swiftbid/internal/pkg/errs"
)

// memStore is an in-memory stand-in for the database, shared by all units of
// work created from it. A single row mutex emulates the delivery row lock:
// GetForUpdate acquires it and Commit/Rollback releases it, so two units of
// work contending for the same delivery serialize exactly like two
// transactions would.
type memStore struct {
	mu         sync.Mutex
	rowMu      sync.Mutex
	deliveries map[string]*delivery.Delivery
	bids       map[string]*bid.Bid
}

func newMemStore() *memStore {
	return &memStore{
		deliveries: make(map[string]*delivery.Delivery),
		bids:       make(map[string]*bid.Bid),
	}
}

func (s *memStore) seedDelivery(d *delivery.Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries[d.ID().String()] = cloneDelivery(d)
}

func (s *memStore) seedBid(b *bid.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids[b.ID().String()] = cloneBid(b)
}

func (s *memStore) delivery(id kernel.UUID) *delivery.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.deliveries[id.String()]; ok {
		return cloneDelivery(d)
	}
	return nil
}

func (s *memStore) bid(id kernel.UUID) *bid.Bid {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bids[id.String()]; ok {
		return cloneBid(b)
	}
	return nil
}

func cloneDelivery(d *delivery.Delivery) *delivery.Delivery {
	clone, err := delivery.RestoreDelivery(
		d.ID(), d.CustomerID(), d.Type(), d.Pickup(), d.Destination(),
		d.PackageDetails(), d.PickupTime(), d.Price(),
		d.PaymentStatus(), d.Status(), d.AcceptedBidID(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func cloneBid(b *bid.Bid) *bid.Bid {
	clone, err := bid.RestoreBid(
		b.ID(), b.DeliveryID(), b.RiderID(), b.Amount(),
		b.EstimatedTime(), b.Message(), b.Status(), b.CreatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

// memUoW buffers writes until Commit, discarding them on Rollback, so a
// failing handler leaves the store untouched.
type memUoW struct {
	store             *memStore
	pendingDeliveries map[string]*delivery.Delivery
	pendingBids       map[string]*bid.Bid
	locked            bool
	done              bool
}

func newMemUoW(store *memStore) *memUoW {
	return &memUoW{
		store:             store,
		pendingDeliveries: make(map[string]*delivery.Delivery),
		pendingBids:       make(map[string]*bid.Bid),
	}
}

func (u *memUoW) Begin(_ context.Context) error { return nil }

func (u *memUoW) Commit(_ context.Context) error {
	u.store.mu.Lock()
	for id, d := range u.pendingDeliveries {
		u.store.deliveries[id] = d
	}
	for id, b := range u.pendingBids {
		u.store.bids[id] = b
	}
	u.store.mu.Unlock()
	u.finish()
	return nil
}

func (u *memUoW) Rollback(_ context.Context) error {
	u.finish()
	return nil
}

func (u *memUoW) finish() {
	if u.done {
		return
	}
	u.done = true
	u.pendingDeliveries = make(map[string]*delivery.Delivery)
	u.pendingBids = make(map[string]*bid.Bid)
	if u.locked {
		u.locked = false
		u.store.rowMu.Unlock()
	}
}

func (u *memUoW) DeliveryRepository() ports.DeliveryRepository { return (*memDeliveryRepo)(u) }
func (u *memUoW) BidRepository() ports.BidRepository           { return (*memBidRepo)(u) }

type memDeliveryRepo memUoW

func (r *memDeliveryRepo) Add(_ context.Context, d *delivery.Delivery) error {
	r.pendingDeliveries[d.ID().String()] = cloneDelivery(d)
	return nil
}

func (r *memDeliveryRepo) Update(_ context.Context, d *delivery.Delivery) error {
	r.pendingDeliveries[d.ID().String()] = cloneDelivery(d)
	return nil
}

func (r *memDeliveryRepo) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if d, ok := r.pendingDeliveries[id.String()]; ok {
		return cloneDelivery(d), nil
	}
	if d := r.store.delivery(id); d != nil {
		return d, nil
	}
	return nil, errs.NewObjectNotFoundError("delivery", id.String())
}

func (r *memDeliveryRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if !r.locked {
		r.store.rowMu.Lock()
		r.locked = true
	}
	return r.Get(ctx, id)
}

func (r *memDeliveryRepo) GetAllPendingOlderThan(ctx context.Context, minutes int) ([]*delivery.Delivery, error) {
	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)
	return r.collect(ctx, func(d *delivery.Delivery) bool {
		return d.Status() == delivery.StatusPending && d.PickupTime().Before(cutoff)
	})
}

func (r *memDeliveryRepo) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*delivery.Delivery, error) {
	return r.collect(ctx, func(d *delivery.Delivery) bool {
		return d.IsOwnedBy(customerID)
	})
}

func (r *memDeliveryRepo) collect(_ context.Context, keep func(*delivery.Delivery) bool) ([]*delivery.Delivery, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*delivery.Delivery
	for id, d := range r.store.deliveries {
		if pending, ok := r.pendingDeliveries[id]; ok {
			d = pending
		}
		if keep(d) {
			result = append(result, cloneDelivery(d))
		}
	}
	return result, nil
}

type memBidRepo memUoW

func (r *memBidRepo) Add(_ context.Context, b *bid.Bid) error {
	r.pendingBids[b.ID().String()] = cloneBid(b)
	return nil
}

func (r *memBidRepo) Update(_ context.Context, b *bid.Bid) error {
	r.pendingBids[b.ID().String()] = cloneBid(b)
	return nil
}

func (r *memBidRepo) Get(_ context.Context, id kernel.UUID) (*bid.Bid, error) {
	if b, ok := r.pendingBids[id.String()]; ok {
		return cloneBid(b), nil
	}
	if b := r.store.bid(id); b != nil {
		return b, nil
	}
	return nil, errs.NewObjectNotFoundError("bid", id.String())
}

func (r *memBidRepo) GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*bid.Bid, error) {
	return r.collect(ctx, func(b *bid.Bid) bool {
		return b.BelongsToDelivery(deliveryID)
	})
}

func (r *memBidRepo) GetPendingByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*bid.Bid, error) {
	return r.collect(ctx, func(b *bid.Bid) bool {
		return b.BelongsToDelivery(deliveryID) && b.Status() == bid.StatusPending
	})
}

func (r *memBidRepo) GetByRider(ctx context.Context, riderID kernel.UUID) ([]*bid.Bid, error) {
	return r.collect(ctx, func(b *bid.Bid) bool {
		return b.IsOwnedBy(riderID)
	})
}

func (r *memBidRepo) GetActiveByDeliveryAndRider(ctx context.Context, deliveryID, riderID kernel.UUID) (*bid.Bid, error) {
	matches, err := r.collect(ctx, func(b *bid.Bid) bool {
		return b.BelongsToDelivery(deliveryID) && b.IsOwnedBy(riderID) && b.Status() == bid.StatusPending
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errs.NewObjectNotFoundError("bid", riderID.String())
	}
	return matches[0], nil
}

func (r *memBidRepo) collect(_ context.Context, keep func(*bid.Bid) bool) ([]*bid.Bid, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*bid.Bid
	for id, b := range r.store.bids {
		if pending, ok := r.pendingBids[id]; ok {
			b = pending
		}
		if keep(b) {
			result = append(result, cloneBid(b))
		}
	}
	return result, nil
}

// Factories over the shared store, one per UoW flavor the handlers consume.

type memUoWFactory struct{ store *memStore }

func (f memUoWFactory) Create() commands.UoW { return newMemUoW(f.store) }

type memDeliveryUoWFactory struct{ store *memStore }

func (f memDeliveryUoWFactory) Create() commands.DeliveryUoW { return newMemUoW(f.store) }

type memBidUoWFactory struct{ store *memStore }

func (f memBidUoWFactory) Create() commands.BidUoW { return newMemUoW(f.store) }

// capturingPublisher records every published event for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []events.DeliveryStatusChanged
}

func (p *capturingPublisher) Publish(_ context.Context, event events.DeliveryStatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) published() []events.DeliveryStatusChanged {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.DeliveryStatusChanged(nil), p.events...)
}
