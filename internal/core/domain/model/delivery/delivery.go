package delivery

import (
	"errors"
	"fmt"
	"time"

	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the aggregate root for a delivery request: a customer's posted
// shipment job awaiting rider bids. It owns the status state machine and the
// weak reference to the accepted bid.
//
// Invariants:
//   - owner (customerID) is immutable after creation
//   - acceptedBidID is set if and only if status is accepted, in_progress,
//     or completed
//   - status transitions follow the table in Status; anything else fails
//     with an InvalidStateError
//   - a delivery is never deleted, only terminally statused
//
// Only the matching coordinator mutates status together with the accepted
// bid reference; the owning customer may cancel while pending.
type Delivery struct {
	id             kernel.UUID
	customerID     kernel.UUID
	deliveryType   Type
	pickup         kernel.GeoPoint
	destination    kernel.GeoPoint
	packageDetails PackageDetails
	pickupTime     time.Time
	price          float64
	paymentStatus  PaymentStatus
	status         Status
	acceptedBidID  *kernel.UUID

	isConstructed bool
}

// NewDelivery creates a delivery request from a customer's form input.
// The new delivery starts in pending status, unpaid, with no accepted bid.
//
// Validation collects every violated field into a single ValidationError so
// the caller can render all form errors at once: the delivery type must be
// enumerated, pickup and destination must be constructed geo points, the
// package details must be constructed, the pickup time must not be in the
// past, and the price must not be negative.
func NewDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryType Type,
	pickup kernel.GeoPoint,
	destination kernel.GeoPoint,
	packageDetails PackageDetails,
	pickupTime time.Time,
	price float64,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		isConstructed: true,
	}

	if err := errs.JoinValidation(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setType(deliveryType),
		d.setPickup(pickup),
		d.setDestination(destination),
		d.setPackageDetails(packageDetails),
		d.setPickupTime(pickupTime),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery aggregate from persistence.
// Unlike NewDelivery it accepts any valid status and payment status and does
// not re-check the pickup time against the clock (persisted requests age
// past their pickup time legitimately). It enforces the acceptedBidID⇔status
// invariant, rejecting rows where the two disagree.
func RestoreDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryType Type,
	pickup kernel.GeoPoint,
	destination kernel.GeoPoint,
	packageDetails PackageDetails,
	pickupTime time.Time,
	price float64,
	paymentStatus PaymentStatus,
	status Status,
	acceptedBidID *kernel.UUID,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errs.JoinValidation(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setType(deliveryType),
		d.setPickup(pickup),
		d.setDestination(destination),
		d.setPackageDetails(packageDetails),
		d.setPrice(price),
		paymentStatus.Validate(),
		status.Validate(),
		status.ValidateCanHaveAcceptedBid(acceptedBidID != nil),
	); err != nil {
		return nil, err
	}

	if acceptedBidID != nil {
		if err := acceptedBidID.Validate(); err != nil {
			return nil, err
		}
	}

	d.pickupTime = pickupTime
	d.paymentStatus = paymentStatus
	d.status = status
	d.acceptedBidID = acceptedBidID
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the owning customer's identifier.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// IsOwnedBy reports whether the given customer owns this delivery.
func (d *Delivery) IsOwnedBy(customerID kernel.UUID) bool {
	return d.customerID.IsEqual(customerID)
}

// Type returns the requested transport mode.
func (d *Delivery) Type() Type {
	return d.deliveryType
}

// Pickup returns the pickup location.
func (d *Delivery) Pickup() kernel.GeoPoint {
	return d.pickup
}

// Destination returns the destination location.
func (d *Delivery) Destination() kernel.GeoPoint {
	return d.destination
}

// PackageDetails returns the shipment description.
func (d *Delivery) PackageDetails() PackageDetails {
	return d.packageDetails
}

// PickupTime returns the requested pickup time.
func (d *Delivery) PickupTime() time.Time {
	return d.pickupTime
}

// Price returns the price offered by the customer.
func (d *Delivery) Price() float64 {
	return d.price
}

// PaymentStatus returns the current payment status.
func (d *Delivery) PaymentStatus() PaymentStatus {
	return d.paymentStatus
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// AcceptedBidID returns the identifier of the accepted bid, or nil while no
// bid has been accepted. The reference is a plain identifier into the bid
// ledger, never an owning link.
func (d *Delivery) AcceptedBidID() *kernel.UUID {
	return d.acceptedBidID
}

// AcceptBid records the exclusive acceptance of one bid: the status advances
// pending→accepted and acceptedBidID is set, in one step, so the aggregate
// never observes one without the other. The matching coordinator is the only
// caller.
func (d *Delivery) AcceptBid(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.acceptedBidID = &bidID
	return nil
}

// Start advances accepted→in_progress when the winning rider begins
// fulfillment.
func (d *Delivery) Start() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete advances in_progress→completed when fulfillment is confirmed.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Cancel transitions the delivery to cancelled from any non-terminal status.
// The customer cancel path additionally requires pending status; that policy
// belongs to the cancel use case, not the aggregate. A cancelled delivery
// holds no accepted bid reference, so the reference is cleared together with
// the transition.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.acceptedBidID = nil
	return nil
}

// MarkPaid records that the external payment provider captured the payment.
func (d *Delivery) MarkPaid() {
	d.paymentStatus = PaymentPaid
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewFieldError("customerId", "must be a valid customer identifier")
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setType(deliveryType Type) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	d.deliveryType = deliveryType
	return nil
}

func (d *Delivery) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewFieldError("pickupLocation", "must have a non-empty address and coordinates")
	}
	d.pickup = pickup
	return nil
}

func (d *Delivery) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return errs.NewFieldError("destination", "must have a non-empty address and coordinates")
	}
	d.destination = destination
	return nil
}

func (d *Delivery) setPackageDetails(packageDetails PackageDetails) error {
	if err := packageDetails.Validate(); err != nil {
		return err
	}
	d.packageDetails = packageDetails
	return nil
}

func (d *Delivery) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewFieldError("pickupTime", "is required")
	}
	if pickupTime.Before(time.Now()) {
		return errs.NewFieldError("pickupTime", "must not be in the past")
	}
	d.pickupTime = pickupTime
	return nil
}

func (d *Delivery) setPrice(price float64) error {
	if price < 0 {
		return errs.NewFieldError("price", fmt.Sprintf("%g must not be negative", price))
	}
	d.price = price
	return nil
}
