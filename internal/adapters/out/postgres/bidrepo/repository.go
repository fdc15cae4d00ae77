package bidrepo

import (
	"context"
	"errors"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBidRepository implements ports.BidRepository using GORM.
type GormBidRepository struct {
	db *gorm.DB
}

// NewGormBidRepository creates a new GORM bid repository.
func NewGormBidRepository(db *gorm.DB) *GormBidRepository {
	return &GormBidRepository{db: db}
}

// Add saves a new bid to the database.
func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists a bid's status, the only column that changes after
// creation. The write is guarded on the row still being pending, mirroring
// the domain rule that a bid transitions exactly once.
func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BidDTO{}).
		Where("id = ? AND status IN ?", dto.ID,
			[]string{bid.StatusPending.String(), dto.Status}).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("bid", "changed concurrently", aggregate.Status().String())
	}

	return nil
}

// Get retrieves a bid by ID.
func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDelivery retrieves every bid placed against the given delivery.
func (r *GormBidRepository) GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*bid.Bid, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "delivery_id = ?", deliveryID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPendingByDelivery retrieves the live bids still competing for the given
// delivery.
func (r *GormBidRepository) GetPendingByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*bid.Bid, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "delivery_id = ? AND status = ?",
			deliveryID.Bytes(), bid.StatusPending.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByRider retrieves every bid the given rider has placed, newest first.
func (r *GormBidRepository) GetByRider(ctx context.Context, riderID kernel.UUID) ([]*bid.Bid, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "rider_id = ?", riderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActiveByDeliveryAndRider retrieves the rider's pending bid on the given
// delivery, if one exists.
func (r *GormBidRepository) GetActiveByDeliveryAndRider(ctx context.Context, deliveryID, riderID kernel.UUID) (*bid.Bid, error) {
	if err := errs.JoinValidation(deliveryID.Validate(), riderID.Validate()); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "delivery_id = ? AND rider_id = ? AND status = ?",
			deliveryID.Bytes(), riderID.Bytes(), bid.StatusPending.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", riderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomainSlice(dtos []BidDTO) ([]*bid.Bid, error) {
	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bids = append(bids, aggregate)
	}

	return bids, nil
}
