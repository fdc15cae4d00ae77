package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists a delivery's mutable state. Everything but the status,
// payment status and accepted bid reference is immutable after creation, so
// only those columns are written. The update is additionally guarded on the
// statuses the new status may legally follow: if a concurrent transaction
// already moved the row elsewhere, the update affects zero rows and surfaces
// as a conflict instead of a double-apply.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status IN ?", dto.ID, legalPriorStatuses(aggregate.Status())).
		Updates(map[string]any{
			"status":          dto.Status,
			"payment_status":  dto.PaymentStatus,
			"accepted_bid_id": dto.AcceptedBidID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("delivery", "changed concurrently", aggregate.Status().String())
	}

	return nil
}

// legalPriorStatuses lists the stored statuses an update to newStatus may
// overwrite: the legal predecessors in the transition table plus newStatus
// itself, for saves that change no status.
func legalPriorStatuses(newStatus delivery.Status) []string {
	switch newStatus {
	case delivery.StatusAccepted:
		return []string{delivery.StatusPending.String(), delivery.StatusAccepted.String()}
	case delivery.StatusInProgress:
		return []string{delivery.StatusAccepted.String(), delivery.StatusInProgress.String()}
	case delivery.StatusCompleted:
		return []string{delivery.StatusInProgress.String(), delivery.StatusCompleted.String()}
	case delivery.StatusCancelled:
		return []string{
			delivery.StatusPending.String(),
			delivery.StatusAccepted.String(),
			delivery.StatusInProgress.String(),
			delivery.StatusCancelled.String(),
		}
	default:
		return []string{delivery.StatusPending.String()}
	}
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a delivery and takes a row-level write lock that is
// held until the surrounding transaction ends. Matching, cancellation and
// lifecycle transitions for one delivery serialize on this lock while other
// deliveries proceed concurrently.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, id, true)
}

func (r *GormDeliveryRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DeliveryDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingOlderThan retrieves pending deliveries whose pickup time
// passed more than the given number of minutes ago.
func (r *GormDeliveryRepository) GetAllPendingOlderThan(ctx context.Context, minutes int) ([]*delivery.Delivery, error) {
	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND pickup_time < ?",
			delivery.StatusPending.String(), cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByCustomer retrieves all deliveries created by the given customer,
// newest first.
func (r *GormDeliveryRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, aggregate)
	}

	return deliveries, nil
}
