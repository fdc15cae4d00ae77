package http

import (
	"time"

	"swiftbid/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every failed request. Code is the
// stable machine identifier of the error kind; clients dispatch on it, never
// on the message text. The remaining fields carry the structured detail of
// the kinds that have one.
type Error struct {
	Code          string           `json:"code"`
	Message       string           `json:"message"`
	Violations    []FieldViolation `json:"violations,omitempty"`
	Current       string           `json:"current,omitempty"`
	Attempted     string           `json:"attempted,omitempty"`
	ExistingBidID *string          `json:"existing_bid_id,omitempty"`
}

// FieldViolation names one invalid input field and what is wrong with it.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewDeliveryRequest is the body of POST /api/v1/deliveries.
type NewDeliveryRequest struct {
	DeliveryType string          `json:"delivery_type"`
	Pickup       LocationRequest `json:"pickup"`
	Destination  LocationRequest `json:"destination"`
	Package      PackageRequest  `json:"package"`
	PickupTime   time.Time       `json:"pickup_time"`
	Price        float64         `json:"price"`
}

// LocationRequest is an address with coordinates.
type LocationRequest struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PackageRequest describes the parcel being shipped.
type PackageRequest struct {
	Weight      float64 `json:"weight"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Description string  `json:"description"`
}

// NewBidRequest is the body of POST /api/v1/bids.
type NewBidRequest struct {
	DeliveryID    string  `json:"delivery_id"`
	Amount        float64 `json:"amount"`
	EstimatedTime int     `json:"estimated_time"`
	Message       string  `json:"message"`
}

// AcceptBidRequest is the body of POST /api/v1/deliveries/:id/accept-bid.
type AcceptBidRequest struct {
	BidID string `json:"bid_id"`
}

// CreatedResponse returns the identifier assigned to a newly created
// resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MatchResponse is the result of accepting a bid.
type MatchResponse struct {
	DeliveryID     string  `json:"delivery_id"`
	DeliveryStatus string  `json:"delivery_status"`
	WinningBidID   string  `json:"winning_bid_id"`
	RiderID        string  `json:"rider_id"`
	Amount         float64 `json:"amount"`
	EstimatedTime  int     `json:"estimated_time"`
}

// AvailableDelivery is one entry in the rider feed.
type AvailableDelivery struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	DeliveryType       string    `json:"delivery_type"`
	PickupAddress      string    `json:"pickup_address"`
	DestinationAddress string    `json:"destination_address"`
	PackageWeight      float64   `json:"package_weight"`
	PackageDescription string    `json:"package_description"`
	PickupTime         time.Time `json:"pickup_time"`
	Price              float64   `json:"price"`
	BidCount           int       `json:"bid_count"`
}

// CustomerBid is a bid as shown to the delivery's owner.
type CustomerBid struct {
	ID            string    `json:"id"`
	RiderID       string    `json:"rider_id"`
	Amount        float64   `json:"amount"`
	EstimatedTime int       `json:"estimated_time"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CustomerDelivery is one of the customer's deliveries with its visible
// bids.
type CustomerDelivery struct {
	ID                 string        `json:"id"`
	DeliveryType       string        `json:"delivery_type"`
	PickupAddress      string        `json:"pickup_address"`
	DestinationAddress string        `json:"destination_address"`
	PackageWeight      float64       `json:"package_weight"`
	PackageDescription string        `json:"package_description"`
	PickupTime         time.Time     `json:"pickup_time"`
	Price              float64       `json:"price"`
	PaymentStatus      string        `json:"payment_status"`
	Status             string        `json:"status"`
	AcceptedBidID      *string       `json:"accepted_bid_id,omitempty"`
	Bids               []CustomerBid `json:"bids"`
}

// RiderBid is one of the rider's bids joined with its parent delivery.
type RiderBid struct {
	ID                 string    `json:"id"`
	Amount             float64   `json:"amount"`
	EstimatedTime      int       `json:"estimated_time"`
	Message            string    `json:"message,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	DeliveryID         string    `json:"delivery_id"`
	DeliveryStatus     string    `json:"delivery_status"`
	DeliveryType       string    `json:"delivery_type"`
	PickupAddress      string    `json:"pickup_address"`
	DestinationAddress string    `json:"destination_address"`
	PickupTime         time.Time `json:"pickup_time"`
	Price              float64   `json:"price"`
}

func availableDeliveryFromQuery(row queries.GetAvailableDeliveriesQueryResponse) AvailableDelivery {
	return AvailableDelivery{
		ID:                 row.ID.String(),
		CustomerID:         row.CustomerID.String(),
		DeliveryType:       row.DeliveryType,
		PickupAddress:      row.PickupAddress,
		DestinationAddress: row.DestinationAddress,
		PackageWeight:      row.PackageWeight,
		PackageDescription: row.PackageDescription,
		PickupTime:         row.PickupTime,
		Price:              row.Price,
		BidCount:           row.BidCount,
	}
}

func customerDeliveryFromQuery(row queries.GetCustomerDeliveriesQueryResponse) CustomerDelivery {
	bids := make([]CustomerBid, len(row.Bids))
	for i, b := range row.Bids {
		bids[i] = CustomerBid{
			ID:            b.ID.String(),
			RiderID:       b.RiderID.String(),
			Amount:        b.Amount,
			EstimatedTime: b.EstimatedTime,
			Message:       b.Message,
			Status:        b.Status,
			CreatedAt:     b.CreatedAt,
		}
	}

	var acceptedBidID *string
	if row.AcceptedBidID != nil {
		id := row.AcceptedBidID.String()
		acceptedBidID = &id
	}

	return CustomerDelivery{
		ID:                 row.ID.String(),
		DeliveryType:       row.DeliveryType,
		PickupAddress:      row.PickupAddress,
		DestinationAddress: row.DestinationAddress,
		PackageWeight:      row.PackageWeight,
		PackageDescription: row.PackageDescription,
		PickupTime:         row.PickupTime,
		Price:              row.Price,
		PaymentStatus:      row.PaymentStatus,
		Status:             row.Status,
		AcceptedBidID:      acceptedBidID,
		Bids:               bids,
	}
}

func riderBidFromQuery(row queries.GetRiderBidsQueryResponse) RiderBid {
	return RiderBid{
		ID:                 row.ID.String(),
		Amount:             row.Amount,
		EstimatedTime:      row.EstimatedTime,
		Message:            row.Message,
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
		DeliveryID:         row.DeliveryID.String(),
		DeliveryStatus:     row.DeliveryStatus,
		DeliveryType:       row.DeliveryType,
		PickupAddress:      row.PickupAddress,
		DestinationAddress: row.DestinationAddress,
		PickupTime:         row.PickupTime,
		Price:              row.Price,
	}
}
