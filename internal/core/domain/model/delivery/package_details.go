package delivery

import (
	"fmt"

	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

// ErrPackageDetailsIsNotConstructed is returned when validating a zero-value
// PackageDetails. Use NewPackageDetails.
var ErrPackageDetailsIsNotConstructed = errs.NewFieldError(
	"packageDetails", "package details must be created via NewPackageDetails constructor")

// PackageDetails is an immutable value object describing the shipment:
// weight in kilograms, dimensions in centimeters, and a free-text
// description. Weight and all three dimensions must be positive; the
// description must not be empty.
type PackageDetails struct { //nolint:recvcheck //using for validation
	weight      float64
	length      float64
	width       float64
	height      float64
	description string

	guard guard.ConstructorGuard
}

// NewPackageDetails creates PackageDetails from the customer's form input.
// All violations are collected and reported together so a form can highlight
// every failing field at once.
func NewPackageDetails(weight, length, width, height float64, description string) (PackageDetails, error) {
	details := PackageDetails{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		details.setPositive("packageDetails.weight", weight, &details.weight),
		details.setPositive("packageDetails.dimensions.length", length, &details.length),
		details.setPositive("packageDetails.dimensions.width", width, &details.width),
		details.setPositive("packageDetails.dimensions.height", height, &details.height),
		details.setDescription(description),
	); err != nil {
		return PackageDetails{}, err
	}

	return details, nil
}

// Weight returns the package weight in kilograms.
func (d PackageDetails) Weight() float64 {
	return d.weight
}

// Length returns the package length in centimeters.
func (d PackageDetails) Length() float64 {
	return d.length
}

// Width returns the package width in centimeters.
func (d PackageDetails) Width() float64 {
	return d.width
}

// Height returns the package height in centimeters.
func (d PackageDetails) Height() float64 {
	return d.height
}

// Description returns the free-text description of the package contents.
func (d PackageDetails) Description() string {
	return d.description
}

// Validate checks that the value was created through its constructor.
func (d PackageDetails) Validate() error {
	return d.guard.Validate(ErrPackageDetailsIsNotConstructed)
}

func (d *PackageDetails) setPositive(field string, value float64, dst *float64) error {
	if value <= 0 {
		return errs.NewFieldError(field, fmt.Sprintf("%g is not greater than 0", value))
	}
	*dst = value
	return nil
}

func (d *PackageDetails) setDescription(description string) error {
	if description == "" {
		return errs.NewFieldError("packageDetails.description", "must not be empty")
	}
	d.description = description
	return nil
}
