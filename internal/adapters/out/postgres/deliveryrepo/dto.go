// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, handling conversion between domain entities and their
// database representation.
package deliveryrepo

import (
	"time"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Statuses are stored as their wire strings so the read-side
// queries can filter on them directly.
type DeliveryDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID   `gorm:"type:uuid;index"`
	DeliveryType  string      `gorm:"type:varchar(16)"`
	Pickup        GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Destination   GeoPointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Package       PackageDTO  `gorm:"embedded;embeddedPrefix:package_"`
	PickupTime    time.Time
	Price         float64
	PaymentStatus string     `gorm:"type:varchar(16)"`
	Status        string     `gorm:"type:varchar(16);index"`
	AcceptedBidID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// GeoPointDTO represents an embedded address with coordinates. Pickup and
// destination are stored side by side in the deliveries table.
type GeoPointDTO struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// PackageDTO represents the embedded package description within the
// deliveries table.
type PackageDTO struct {
	Weight      float64
	Length      float64
	Width       float64
	Height      float64
	Description string
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var acceptedBidID *uuid.UUID
	if id := aggregate.AcceptedBidID(); id != nil {
		raw := id.Bytes()
		acceptedBidID = &raw
	}

	pickup := aggregate.Pickup()
	destination := aggregate.Destination()
	pkg := aggregate.PackageDetails()

	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		DeliveryType: aggregate.Type().String(),
		Pickup: GeoPointDTO{
			Address:   pickup.Address(),
			Latitude:  pickup.Latitude(),
			Longitude: pickup.Longitude(),
		},
		Destination: GeoPointDTO{
			Address:   destination.Address(),
			Latitude:  destination.Latitude(),
			Longitude: destination.Longitude(),
		},
		Package: PackageDTO{
			Weight:      pkg.Weight(),
			Length:      pkg.Length(),
			Width:       pkg.Width(),
			Height:      pkg.Height(),
			Description: pkg.Description(),
		},
		PickupTime:    aggregate.PickupTime(),
		Price:         aggregate.Price(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Status:        aggregate.Status().String(),
		AcceptedBidID: acceptedBidID,
	}
}

// toDomain converts a database DTO to a delivery aggregate. Reconstruction
// goes through RestoreDelivery, so rows violating the accepted-bid invariant
// are rejected instead of silently loaded.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var acceptedBidID *kernel.UUID
	if dto.AcceptedBidID != nil {
		bidID, bidErr := kernel.UUIDFromBytes((*dto.AcceptedBidID)[:])
		if bidErr != nil {
			return nil, bidErr
		}
		acceptedBidID = &bidID
	}

	deliveryType, err := delivery.TypeFromString(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := delivery.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Address, dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(
		dto.Destination.Address, dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	pkg, err := delivery.NewPackageDetails(
		dto.Package.Weight, dto.Package.Length, dto.Package.Width,
		dto.Package.Height, dto.Package.Description)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, customerID, deliveryType, pickup, destination, pkg,
		dto.PickupTime, dto.Price, paymentStatus, status, acceptedBidID,
	)
}
