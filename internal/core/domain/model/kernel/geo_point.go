package kernel

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a WGS84 coordinate attached to an address.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

func (p *GeoPoint) setLatitude(v float64) error {
	if v < LatitudeMin || v > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", v, LatitudeMin, LatitudeMax)
	}
	p.latitude = v
	return nil
}

func (p *GeoPoint) setLongitude(v float64) error {
	if v < LongitudeMin || v > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", v, LongitudeMin, LongitudeMax)
	}
	p.longitude = v
	return nil
}
