package commands_test

import (
	"context"

	"swiftbid/internal/core/application/usecases/commands"
	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/core/ports"
)

// hookedUoW wraps a unit of work and fires callbacks at chosen points of the
// delivery repository, so a test can interleave a competing operation at an
// exact spot inside a running transaction.
type hookedUoW struct {
	commands.UoW
	afterLock func()
	afterList func()
}

func (u *hookedUoW) DeliveryRepository() ports.DeliveryRepository {
	return &hookedDeliveryRepo{
		DeliveryRepository: u.UoW.DeliveryRepository(),
		afterLock:          u.afterLock,
		afterList:          u.afterList,
	}
}

type hookedDeliveryRepo struct {
	ports.DeliveryRepository
	afterLock func()
	afterList func()
}

func (r *hookedDeliveryRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	d, err := r.DeliveryRepository.GetForUpdate(ctx, id)
	if err == nil && r.afterLock != nil {
		r.afterLock()
	}
	return d, err
}

func (r *hookedDeliveryRepo) GetAllPendingOlderThan(ctx context.Context, minutes int) ([]*delivery.Delivery, error) {
	stale, err := r.DeliveryRepository.GetAllPendingOlderThan(ctx, minutes)
	if err == nil && r.afterList != nil {
		r.afterList()
	}
	return stale, err
}

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type funcDeliveryUoWFactory func() commands.DeliveryUoW

func (f funcDeliveryUoWFactory) Create() commands.DeliveryUoW { return f() }
