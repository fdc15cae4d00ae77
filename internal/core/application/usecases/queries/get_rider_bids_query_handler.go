package queries

import (
	"context"

	"swiftbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRiderBidsQueryHandler retrieves a rider's bid history joined with the
// parent deliveries in one round trip.
type GetRiderBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderBidsQueryHandler creates a handler for rider bid queries.
// Requires a GORM database connection for query execution.
func NewGetRiderBidsQueryHandler(db *gorm.DB) GetRiderBidsQueryHandler {
	return GetRiderBidsQueryHandler{db: db}
}

// Handle executes the query.
// Returns the rider's bids newest first.
func (h GetRiderBidsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderBidsQuery,
) ([]GetRiderBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bids := make([]GetRiderBidsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.amount,
			b.estimated_time,
			b.message,
			b.status,
			b.created_at,
			d.id,
			d.status,
			d.delivery_type,
			d.pickup_address,
			d.destination_address,
			d.pickup_time,
			d.price
		FROM bids b
		JOIN deliveries d ON d.id = b.delivery_id
		WHERE b.rider_id = ?
		ORDER BY b.created_at DESC
	`, query.RiderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetRiderBidsQueryResponse
		var id, deliveryID uuid.UUID

		err = rows.Scan(
			&id,
			&item.Amount,
			&item.EstimatedTime,
			&item.Message,
			&item.Status,
			&item.CreatedAt,
			&deliveryID,
			&item.DeliveryStatus,
			&item.DeliveryType,
			&item.PickupAddress,
			&item.DestinationAddress,
			&item.PickupTime,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}

		bidID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = bidID

		parentID, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.DeliveryID = parentID

		bids = append(bids, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
