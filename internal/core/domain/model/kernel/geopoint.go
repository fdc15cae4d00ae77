package kernel

import (
	"fmt"

	"swiftbid/internal/pkg/errs"
	"swiftbid/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound valid latitudes in decimal degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound valid longitudes in decimal degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewFieldError(
	"geoPoint", "geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object pairing a human-readable address with
// geographic coordinates. Pickup and destination of a delivery are GeoPoints.
// The zero value is invalid; use the constructor.
//
// Example:
//
//	pickup, err := kernel.NewGeoPoint("1 Warehouse Rd", 51.5072, -0.1276)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	address   string
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given address and coordinates.
// The address must be non-empty; latitude and longitude must lie within the
// valid geographic ranges. All violations are reported together.
func NewGeoPoint(address string, latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errs.JoinValidation(
		point.setAddress(address),
		point.setLatitude(latitude),
		point.setLongitude(longitude),
	); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Address returns the human-readable address of the point.
func (p GeoPoint) Address() string {
	return p.address
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two GeoPoints by address and coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.address == other.address &&
		p.latitude == other.latitude &&
		p.longitude == other.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%s (%.6f,%.6f)", p.address, p.latitude, p.longitude)
}

// Validate checks that the GeoPoint was created through its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setAddress(address string) error {
	if address == "" {
		return errs.NewFieldError("address", "must not be empty")
	}
	p.address = address
	return nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewFieldError("latitude",
			fmt.Sprintf("%.6f is outside [%g, %g]", latitude, LatitudeMin, LatitudeMax))
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewFieldError("longitude",
			fmt.Sprintf("%.6f is outside [%g, %g]", longitude, LongitudeMin, LongitudeMax))
	}
	p.longitude = longitude
	return nil
}
