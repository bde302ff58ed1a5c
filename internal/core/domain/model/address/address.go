package address

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DefaultCountry is stored when an address is created without a country.
const DefaultCountry = "India"

var (
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrNoAddress is returned when a user without any saved address needs one.
	ErrNoAddress = errs.NewObjectNotFoundError("address", "add an address first")
	// ErrDuplicateAddress is returned when the same address is saved twice for a user.
	ErrDuplicateAddress = errs.NewConflictError("address", "this address already exists")
	// ErrLastAddress is returned when deleting the only address a user has.
	ErrLastAddress = errs.NewValueIsInvalidError("you must have at least one address")
	// ErrNotAddressOwner is returned when a user touches someone else's address.
	ErrNotAddressOwner = errs.NewAccessDeniedError("address belongs to another user")
)

// Details carries the user supplied part of an address.
type Details struct {
	Label       Label
	AddressLine string
	Landmarks   []string
	City        string
	State       string
	Country     string
	PinCode     string
	Geo         kernel.GeoPoint
}

// Address is a delivery location belonging to exactly one user.
// At most one address per user is the default.
type Address struct {
	id        kernel.UUID
	userID    kernel.UUID
	details   Details
	isDefault bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewAddress(id, userID kernel.UUID, details Details, isDefault bool, now time.Time) (*Address, error) {
	a := &Address{
		isDefault:     isDefault,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setDetails(details),
	); err != nil {
		return nil, err
	}
	return a, nil
}

func RestoreAddress(id, userID kernel.UUID, details Details, isDefault bool, createdAt, updatedAt time.Time) *Address {
	return &Address{
		id:            id,
		userID:        userID,
		details:       details,
		isDefault:     isDefault,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

func (a *Address) UserID() kernel.UUID {
	return a.userID
}

func (a *Address) Label() Label {
	return a.details.Label
}

func (a *Address) AddressLine() string {
	return a.details.AddressLine
}

func (a *Address) Landmarks() []string {
	out := make([]string, len(a.details.Landmarks))
	copy(out, a.details.Landmarks)
	return out
}

func (a *Address) City() string {
	return a.details.City
}

func (a *Address) State() string {
	return a.details.State
}

func (a *Address) Country() string {
	return a.details.Country
}

func (a *Address) PinCode() string {
	return a.details.PinCode
}

func (a *Address) Geo() kernel.GeoPoint {
	return a.details.Geo
}

func (a *Address) IsDefault() bool {
	return a.isDefault
}

func (a *Address) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Address) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Address) IsOwnedBy(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

func (a *Address) EnsureOwnedBy(userID kernel.UUID) error {
	if !a.IsOwnedBy(userID) {
		return ErrNotAddressOwner
	}
	return nil
}

// IsSameLocation reports whether other describes the same place for duplicate detection.
func (a *Address) IsSameLocation(other Details) bool {
	return strings.EqualFold(a.details.AddressLine, strings.TrimSpace(other.AddressLine)) &&
		strings.EqualFold(a.details.City, strings.TrimSpace(other.City)) &&
		strings.EqualFold(a.details.State, strings.TrimSpace(other.State)) &&
		a.details.PinCode == strings.TrimSpace(other.PinCode)
}

func (a *Address) MarkDefault(now time.Time) {
	a.isDefault = true
	a.updatedAt = now
}

func (a *Address) UnmarkDefault(now time.Time) {
	a.isDefault = false
	a.updatedAt = now
}

// ApplyPatch validates the merged details before replacing the current ones.
func (a *Address) ApplyPatch(p Patch, now time.Time) error {
	next := a.details
	if p.Label != nil {
		next.Label = *p.Label
	}
	if p.AddressLine != nil {
		next.AddressLine = *p.AddressLine
	}
	if p.Landmarks != nil {
		next.Landmarks = *p.Landmarks
	}
	if p.City != nil {
		next.City = *p.City
	}
	if p.State != nil {
		next.State = *p.State
	}
	if p.Country != nil {
		next.Country = *p.Country
	}
	if p.PinCode != nil {
		next.PinCode = *p.PinCode
	}
	if p.Geo != nil {
		next.Geo = *p.Geo
	}

	if err := a.setDetails(next); err != nil {
		return err
	}
	a.updatedAt = now
	return nil
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	a.userID = userID
	return nil
}

func (a *Address) setDetails(d Details) error {
	d.AddressLine = strings.TrimSpace(d.AddressLine)
	d.City = strings.TrimSpace(d.City)
	d.State = strings.TrimSpace(d.State)
	d.PinCode = strings.TrimSpace(d.PinCode)
	d.Country = strings.TrimSpace(d.Country)
	if d.Country == "" {
		d.Country = DefaultCountry
	}
	if d.Label == "" {
		d.Label = LabelHome
	}

	var err error
	if _, labelErr := ParseLabel(string(d.Label)); labelErr != nil {
		err = errors.Join(err, labelErr)
	}
	if d.AddressLine == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("addressLine"))
	}
	if d.City == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if d.State == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("state"))
	}
	if d.PinCode == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("pinCode"))
	}
	landmarks := make([]string, 0, len(d.Landmarks))
	for _, l := range d.Landmarks {
		if l = strings.TrimSpace(l); l != "" {
			landmarks = append(landmarks, l)
		}
	}
	if len(landmarks) == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("landmark"))
	}
	if geoErr := d.Geo.Validate(); geoErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("geo", geoErr))
	}
	if err != nil {
		return err
	}

	d.Landmarks = landmarks
	a.details = d
	return nil
}
