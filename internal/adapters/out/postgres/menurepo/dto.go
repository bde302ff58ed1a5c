// Package menurepo persists catalog items.
package menurepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the menu_items table.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null;index"`
	Category     string          `gorm:"type:varchar(32);not null;index"`
	ImageURL     string          `gorm:"type:varchar(1024);not null"`
	IsVegetarian bool            `gorm:"not null"`
	IsVegan      bool            `gorm:"not null"`
	Rating       float64         `gorm:"not null"`
	Reviews      int             `gorm:"not null"`
	IsAvailable  bool            `gorm:"not null;index"`
	CreatedAt    time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(m *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           m.ID().Bytes(),
		CreatedBy:    m.CreatedBy().Bytes(),
		Name:         m.Name(),
		Description:  m.Description(),
		Price:        m.Price().Decimal(),
		Category:     m.Category().String(),
		ImageURL:     m.ImageURL(),
		IsVegetarian: m.IsVegetarian(),
		IsVegan:      m.IsVegan(),
		Rating:       m.Rating(),
		Reviews:      m.Reviews(),
		IsAvailable:  m.IsAvailable(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromGoogle(dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	details := menu.Details{
		Name:         dto.Name,
		Description:  dto.Description,
		Price:        price,
		Category:     category,
		ImageURL:     dto.ImageURL,
		IsVegetarian: dto.IsVegetarian,
		IsVegan:      dto.IsVegan,
	}

	return menu.RestoreMenuItem(
		id, createdBy, details, dto.Rating, dto.Reviews, dto.IsAvailable,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(),
	), nil
}
