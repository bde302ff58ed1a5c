// Package addressrepo persists user addresses.
package addressrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AddressDTO represents the addresses table. Landmarks are a postgres text array.
type AddressDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Label       string         `gorm:"type:varchar(16);not null"`
	AddressLine string         `gorm:"type:varchar(255);not null"`
	Landmarks   pq.StringArray `gorm:"type:text[]"`
	City        string         `gorm:"type:varchar(120);not null"`
	State       string         `gorm:"type:varchar(120);not null"`
	Country     string         `gorm:"type:varchar(120);not null"`
	PinCode     string         `gorm:"type:varchar(16);not null"`
	Latitude    float64        `gorm:"not null"`
	Longitude   float64        `gorm:"not null"`
	IsDefault   bool           `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:          a.ID().Bytes(),
		UserID:      a.UserID().Bytes(),
		Label:       a.Label().String(),
		AddressLine: a.AddressLine(),
		Landmarks:   pq.StringArray(a.Landmarks()),
		City:        a.City(),
		State:       a.State(),
		Country:     a.Country(),
		PinCode:     a.PinCode(),
		Latitude:    a.Geo().Latitude(),
		Longitude:   a.Geo().Longitude(),
		IsDefault:   a.IsDefault(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	geo, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	label, err := address.ParseLabel(dto.Label)
	if err != nil {
		return nil, err
	}

	details := address.Details{
		Label:       label,
		AddressLine: dto.AddressLine,
		Landmarks:   []string(dto.Landmarks),
		City:        dto.City,
		State:       dto.State,
		Country:     dto.Country,
		PinCode:     dto.PinCode,
		Geo:         geo,
	}

	return address.RestoreAddress(id, userID, details, dto.IsDefault, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC()), nil
}
