package commands

import (
	"errors"
	"fmt"
	"time"

	"swiftbid/internal/core/domain/model/delivery"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a customer's request to post a new
// delivery job. It carries the full form input; the constructor validates
// every field and reports all violations together, so the form can render
// them in one pass.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	customerID     kernel.UUID
	deliveryType   delivery.Type
	pickup         kernel.GeoPoint
	destination    kernel.GeoPoint
	packageDetails delivery.PackageDetails
	pickupTime     time.Time
	price          float64

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand builds the command from raw form values.
// The delivery type must be one of the enumerated transport modes; pickup and
// destination need a non-empty address and in-range coordinates; package
// weight and dimensions must be positive; the pickup time must lie in the
// future; the price must not be negative.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	deliveryType string,
	pickupAddress string, pickupLat, pickupLng float64,
	destinationAddress string, destinationLat, destinationLng float64,
	weight, length, width, height float64, description string,
	pickupTime time.Time,
	price float64,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	typ, typErr := delivery.TypeFromString(deliveryType)
	pickup, pickupErr := kernel.NewGeoPoint(pickupAddress, pickupLat, pickupLng)
	destination, destinationErr := kernel.NewGeoPoint(destinationAddress, destinationLat, destinationLng)
	details, detailsErr := delivery.NewPackageDetails(weight, length, width, height, description)

	if err := errs.JoinValidation(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomerID(customerID),
		typErr,
		errs.PrefixFields("pickupLocation", pickupErr),
		errs.PrefixFields("destination", destinationErr),
		detailsErr,
		cmd.setPickupTime(pickupTime),
		cmd.setPrice(price),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.deliveryType = typ
	cmd.pickup = pickup
	cmd.destination = destination
	cmd.packageDetails = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the new delivery will be created under.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CustomerID returns the posting customer's identifier.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryType returns the requested transport mode.
func (c CreateDeliveryCommand) DeliveryType() delivery.Type {
	return c.deliveryType
}

// Pickup returns the validated pickup location.
func (c CreateDeliveryCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

// Destination returns the validated destination location.
func (c CreateDeliveryCommand) Destination() kernel.GeoPoint {
	return c.destination
}

// PackageDetails returns the validated package description.
func (c CreateDeliveryCommand) PackageDetails() delivery.PackageDetails {
	return c.packageDetails
}

// PickupTime returns the requested pickup time.
func (c CreateDeliveryCommand) PickupTime() time.Time {
	return c.pickupTime
}

// Price returns the price the customer offers.
func (c CreateDeliveryCommand) Price() float64 {
	return c.price
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewFieldError("customerId", "must be a valid customer identifier")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewFieldError("pickupTime", "is required")
	}
	if pickupTime.Before(time.Now()) {
		return errs.NewFieldError("pickupTime", "must not be in the past")
	}

	c.pickupTime = pickupTime
	return nil
}

func (c *CreateDeliveryCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewFieldError("price", fmt.Sprintf("%g must not be negative", price))
	}

	c.price = price
	return nil
}
