package queries

import (
	"context"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerDeliveriesQueryHandler retrieves a customer's deliveries with
// the bids they are entitled to see. While a delivery is open its owner sees
// the full bid list except withdrawn bids; once a winner is picked the losing
// bids are no longer the owner's business, so only the accepted bid is
// attached.
type GetCustomerDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerDeliveriesQueryHandler creates a handler for customer
// delivery queries. Requires a GORM database connection for query execution.
func NewGetCustomerDeliveriesQueryHandler(db *gorm.DB) GetCustomerDeliveriesQueryHandler {
	return GetCustomerDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Returns the customer's deliveries newest first, each with its visible bids.
func (h GetCustomerDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerDeliveriesQuery,
) ([]GetCustomerDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.loadDeliveries(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	for i := range deliveries {
		bids, bidErr := h.loadVisibleBids(ctx, &deliveries[i])
		if bidErr != nil {
			return nil, bidErr
		}
		deliveries[i].Bids = bids
	}

	return deliveries, nil
}

func (h GetCustomerDeliveriesQueryHandler) loadDeliveries(
	ctx context.Context,
	customerID kernel.UUID,
) ([]GetCustomerDeliveriesQueryResponse, error) {
	deliveries := make([]GetCustomerDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_type,
			pickup_address,
			destination_address,
			package_weight,
			package_description,
			pickup_time,
			price,
			payment_status,
			status,
			accepted_bid_id
		FROM deliveries
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, customerID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetCustomerDeliveriesQueryResponse
		var id uuid.UUID
		var acceptedBidID uuid.NullUUID

		err = rows.Scan(
			&id,
			&item.DeliveryType,
			&item.PickupAddress,
			&item.DestinationAddress,
			&item.PackageWeight,
			&item.PackageDescription,
			&item.PickupTime,
			&item.Price,
			&item.PaymentStatus,
			&item.Status,
			&acceptedBidID,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = deliveryID

		if acceptedBidID.Valid {
			winnerID, idErr := kernel.UUIDFromBytes(acceptedBidID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.AcceptedBidID = &winnerID
		}

		deliveries = append(deliveries, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (h GetCustomerDeliveriesQueryHandler) loadVisibleBids(
	ctx context.Context,
	item *GetCustomerDeliveriesQueryResponse,
) ([]CustomerBidResponse, error) {
	sql := `
		SELECT id, rider_id, amount, estimated_time, message, status, created_at
		FROM bids
		WHERE delivery_id = ? AND status <> 'withdrawn'
		ORDER BY created_at
	`
	args := []any{item.ID.String()}

	if item.Status != delivery.StatusPending.String() {
		if item.AcceptedBidID == nil {
			return []CustomerBidResponse{}, nil
		}
		sql = `
			SELECT id, rider_id, amount, estimated_time, message, status, created_at
			FROM bids
			WHERE id = ?
		`
		args = []any{item.AcceptedBidID.String()}
	}

	bids := make([]CustomerBidResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bidItem CustomerBidResponse
		var id, riderID uuid.UUID

		err = rows.Scan(
			&id,
			&riderID,
			&bidItem.Amount,
			&bidItem.EstimatedTime,
			&bidItem.Message,
			&bidItem.Status,
			&bidItem.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bidID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		bidItem.ID = bidID

		ownerID, idErr := kernel.UUIDFromBytes(riderID[:])
		if idErr != nil {
			return nil, idErr
		}
		bidItem.RiderID = ownerID

		bids = append(bids, bidItem)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
