// Package bidrepo provides data transfer objects and mapping functions for
// bid persistence.
package bidrepo

import (
	"time"

	"swiftbid/internal/core/domain/model/bid"
	"swiftbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database structure for persisting bids. The
// (delivery_id, rider_id) pair is indexed for the duplicate-bid check.
type BidDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID    uuid.UUID `gorm:"type:uuid;index:idx_bids_delivery_rider"`
	RiderID       uuid.UUID `gorm:"type:uuid;index:idx_bids_delivery_rider;index"`
	Amount        float64
	EstimatedTime int
	Message       string `gorm:"type:varchar(512)"`
	Status        string `gorm:"type:varchar(16);index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts a bid to its database representation.
func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:            aggregate.ID().Bytes(),
		DeliveryID:    aggregate.DeliveryID().Bytes(),
		RiderID:       aggregate.RiderID().Bytes(),
		Amount:        aggregate.Amount(),
		EstimatedTime: aggregate.EstimatedTime(),
		Message:       aggregate.Message(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a bid.
func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	status, err := bid.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(
		id, deliveryID, riderID, dto.Amount, dto.EstimatedTime,
		dto.Message, status, dto.CreatedAt,
	)
}
