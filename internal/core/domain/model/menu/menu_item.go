package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	RatingMin = 0.0
	RatingMax = 5.0
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price")
	// ErrKitchenAddressRequired is returned when an admin without an address creates a menu item.
	ErrKitchenAddressRequired = errs.NewObjectNotFoundError("address", "add your kitchen address first")
)

// Details is the admin supplied content of a menu item.
type Details struct {
	Name         string
	Description  string
	Price        kernel.Money
	Category     Category
	ImageURL     string
	IsVegetarian bool
	IsVegan      bool
}

// MenuItem is a dish in the catalog. Orders reference it by ID only, so
// price changes never touch totals of placed orders.
type MenuItem struct {
	id          kernel.UUID
	createdBy   kernel.UUID
	details     Details
	rating      float64
	reviews     int
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewMenuItem creates an available item with no ratings yet.
func NewMenuItem(id, createdBy kernel.UUID, details Details, now time.Time) (*MenuItem, error) {
	m := &MenuItem{
		isAvailable:   true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setCreatedBy(createdBy),
		m.setDetails(details),
	); err != nil {
		return nil, err
	}
	return m, nil
}

// RestoreMenuItem rebuilds a stored dish without re-running creation checks.
func RestoreMenuItem(
	id, createdBy kernel.UUID,
	details Details,
	rating float64,
	reviews int,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *MenuItem {
	return &MenuItem{
		id:            id,
		createdBy:     createdBy,
		details:       details,
		rating:        rating,
		reviews:       reviews,
		isAvailable:   isAvailable,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID { return m.id }
func (m *MenuItem) CreatedBy() kernel.UUID { return m.createdBy }
func (m *MenuItem) Name() string { return m.details.Name }
func (m *MenuItem) Description() string { return m.details.Description }
func (m *MenuItem) Price() kernel.Money { return m.details.Price }
func (m *MenuItem) Category() Category { return m.details.Category }
func (m *MenuItem) ImageURL() string { return m.details.ImageURL }
func (m *MenuItem) IsVegetarian() bool { return m.details.IsVegetarian }
func (m *MenuItem) IsVegan() bool { return m.details.IsVegan }
func (m *MenuItem) Rating() float64 { return m.rating }
func (m *MenuItem) Reviews() int { return m.reviews }
func (m *MenuItem) IsAvailable() bool { return m.isAvailable }
func (m *MenuItem) CreatedAt() time.Time { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time { return m.updatedAt }

// ToggleAvailability flips the availability flag and returns the new value.
func (m *MenuItem) ToggleAvailability(now time.Time) bool {
	m.isAvailable = !m.isAvailable
	m.updatedAt = now
	return m.isAvailable
}

// ApplyPatch validates every present field before changing any of them.
func (m *MenuItem) ApplyPatch(p Patch, now time.Time) error {
	next := m.details
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.ImageURL != nil {
		next.ImageURL = *p.ImageURL
	}
	if p.IsVegetarian != nil {
		next.IsVegetarian = *p.IsVegetarian
	}
	if p.IsVegan != nil {
		next.IsVegan = *p.IsVegan
	}

	rating, reviews := m.rating, m.reviews
	var err error
	if p.Rating != nil {
		if *p.Rating < RatingMin || *p.Rating > RatingMax {
			err = errors.Join(err, errs.NewValueIsOutOfRangeError("ratings", *p.Rating, RatingMin, RatingMax))
		}
		rating = *p.Rating
	}
	if p.Reviews != nil {
		if *p.Reviews < 0 {
			err = errors.Join(err, errs.NewValueIsOutOfRangeError("reviews", *p.Reviews, 0, "unbounded"))
		}
		reviews = *p.Reviews
	}
	if err != nil {
		return err
	}

	if err := m.setDetails(next); err != nil {
		return err
	}
	m.rating, m.reviews = rating, reviews
	if p.IsAvailable != nil {
		m.isAvailable = *p.IsAvailable
	}
	m.updatedAt = now
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setCreatedBy(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	m.createdBy = userID
	return nil
}

func (m *MenuItem) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)

	var err error
	if d.Name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if d.Description == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("description"))
	}
	if !d.Price.IsPositive() {
		err = errors.Join(err, fmt.Errorf("%w: price must be a positive number", ErrPriceIsInvalid))
	}
	if _, catErr := ParseCategory(string(d.Category)); catErr != nil {
		err = errors.Join(err, catErr)
	}
	if d.ImageURL == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("image"))
	}
	if err != nil {
		return err
	}
	m.details = d
	return nil
}
