package delivery

import (
	"fmt"

	"swiftbid/internal/pkg/errs"
)

// Type enumerates the transport modes a customer can request for a delivery.
type Type int

const (
	// TypeUnknown represents an invalid or undefined delivery type.
	TypeUnknown Type = iota

	// TypeBike is a courier on a bike, for small urban packages.
	TypeBike

	// TypeTruck is a truck delivery for bulky or heavy freight.
	TypeTruck

	// TypeAir is air cargo for long-distance shipments.
	TypeAir

	// TypeFuel is a fuel delivery to a vehicle or site.
	TypeFuel
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeBike:  "bike",
		TypeTruck: "truck",
		TypeAir:   "air",
		TypeFuel:  "fuel",
	}
}

// TypeFromString parses the wire representation of a delivery type.
// Returns a ValidationError naming the deliveryType field for unknown values.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewFieldError("deliveryType",
		fmt.Sprintf("%q is not one of bike, truck, air, fuel", s))
}

// String returns the wire name of the type, or "unknown" for invalid values.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the type is one of the enumerated transport modes.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewFieldError("deliveryType",
			fmt.Sprintf("%d is not a valid delivery type", t))
	}
	return nil
}

// PaymentStatus tracks whether the delivery has been paid for. Payment
// capture itself happens outside the core; this is reference data only.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial payment status of every delivery.
	PaymentUnpaid

	// PaymentPaid indicates the external payment provider reported capture.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnpaid: "unpaid",
		PaymentPaid:   "paid",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for p, str := range getPaymentStatusStrings() {
		if str == s {
			return p, nil
		}
	}
	return PaymentUnknown, errs.NewFieldError("paymentStatus",
		fmt.Sprintf("%q is not a valid payment status", s))
}

// String returns the wire name of the payment status.
func (p PaymentStatus) String() string {
	if s, ok := getPaymentStatusStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the payment status is a known value.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewFieldError("paymentStatus",
			fmt.Sprintf("%d is not a valid payment status", p))
	}
	return nil
}
