package address

import "fooddelivery/internal/core/domain/model/kernel"

// Patch lists the address fields that can be edited. Nil fields are left untouched.
// The default flag is changed through SetDefault, never through a patch.
type Patch struct {
	Label       *Label
	AddressLine *string
	Landmarks   *[]string
	City        *string
	State       *string
	Country     *string
	PinCode     *string
	Geo         *kernel.GeoPoint
}
