package queries

import (
	"context"

	"swiftbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler retrieves the open delivery feed from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the bid count is computed in the same round trip.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for the open
// delivery feed. Requires a GORM database connection for query execution.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Returns pending deliveries sorted by pickup time, each carrying the number
// of bids still competing for it.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]GetAvailableDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAvailableDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.customer_id,
			d.delivery_type,
			d.pickup_address,
			d.destination_address,
			d.package_weight,
			d.package_description,
			d.pickup_time,
			d.price,
			COUNT(b.id) AS bid_count
		FROM deliveries d
		LEFT JOIN bids b ON b.delivery_id = d.id AND b.status = 'pending'
		WHERE d.status = 'pending'
		GROUP BY d.id
		ORDER BY d.pickup_time
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetAvailableDeliveriesQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&item.DeliveryType,
			&item.PickupAddress,
			&item.DestinationAddress,
			&item.PackageWeight,
			&item.PackageDescription,
			&item.PickupTime,
			&item.Price,
			&item.BidCount,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = deliveryID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.CustomerID = ownerID

		deliveries = append(deliveries, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
