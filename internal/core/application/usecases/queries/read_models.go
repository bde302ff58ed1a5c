// Package queries contains the read side: order, account, address and catalog views
// loaded straight from the database without going through the aggregates.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GeoView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AddressView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Label       string    `json:"label"`
	AddressLine string    `json:"addressLine"`
	Landmarks   []string  `json:"landmarks"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	PinCode     string    `json:"pinCode"`
	Geo         GeoView   `json:"geo"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuItemView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"imageUrl"`
	IsVegetarian bool            `json:"isVegetarian"`
	IsVegan      bool            `json:"isVegan"`
	Rating       float64         `json:"ratings"`
	Reviews      int             `json:"reviews"`
	IsAvailable  bool            `json:"isAvailable"`
	CreatedBy    uuid.UUID       `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type UserView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phoneNumber"`
	Wallet       decimal.Decimal `json:"wallet"`
	ReferralCode string          `json:"referralCode"`
	ReferredBy   *string         `json:"referredBy,omitempty"`
	Role         string          `json:"role"`
	Status       string          `json:"status"`
	LastLoginAt  *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// OrderedMenuItem is the catalog entry behind an order line as it is today.
type OrderedMenuItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	ImageURL string          `json:"imageUrl"`
}

type OrderLineView struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	// MenuItem is nil when the item has since been removed from the catalog.
	MenuItem *OrderedMenuItem `json:"item"`
	Quantity int              `json:"quantity"`
}

type OrderView struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"userId"`
	DeliveryAddressID   uuid.UUID       `json:"deliveryAddressId"`
	Items               []OrderLineView `json:"items"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	PaymentMethod       string          `json:"paymentMethod"`
	Status              string          `json:"status"`
	WalletUsed          decimal.Decimal `json:"walletUsed"`
	EstimatedDeliveryAt time.Time       `json:"estimatedDeliveryTime"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	CancelledAt         *time.Time      `json:"cancelledAt,omitempty"`
	DeliveredAt         *time.Time      `json:"deliveredAt,omitempty"`
}

type addressRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Label       string
	AddressLine string
	Landmarks   pq.StringArray `gorm:"type:text[]"`
	City        string
	State       string
	Country     string
	PinCode     string
	Latitude    float64
	Longitude   float64
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r addressRow) view() AddressView {
	landmarks := []string(r.Landmarks)
	if landmarks == nil {
		landmarks = []string{}
	}
	return AddressView{
		ID:          r.ID,
		UserID:      r.UserID,
		Label:       r.Label,
		AddressLine: r.AddressLine,
		Landmarks:   landmarks,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		PinCode:     r.PinCode,
		Geo:         GeoView{Latitude: r.Latitude, Longitude: r.Longitude},
		IsDefault:   r.IsDefault,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

type menuItemRow struct {
	ID           uuid.UUID
	CreatedBy    uuid.UUID
	Name         string
	Description  string
	Price        decimal.Decimal
	Category     string
	ImageURL     string
	IsVegetarian bool
	IsVegan      bool
	Rating       float64
	Reviews      int
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r menuItemRow) view() MenuItemView {
	return MenuItemView{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		IsVegetarian: r.IsVegetarian,
		IsVegan:      r.IsVegan,
		Rating:       r.Rating,
		Reviews:      r.Reviews,
		IsAvailable:  r.IsAvailable,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

type userRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PhoneNumber  string
	Wallet       decimal.Decimal
	ReferralCode string
	ReferredBy   *string
	Role         string
	Status       string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r userRow) view() UserView {
	return UserView{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Wallet:       r.Wallet,
		ReferralCode: r.ReferralCode,
		ReferredBy:   r.ReferredBy,
		Role:         r.Role,
		Status:       r.Status,
		LastLoginAt:  utcPtr(r.LastLoginAt),
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

type orderRow struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	DeliveryAddressID   uuid.UUID
	TotalPrice          decimal.Decimal
	PaymentMethod       string
	Status              string
	WalletUsed          decimal.Decimal
	EstimatedDeliveryAt time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CancelledAt         *time.Time
	DeliveredAt         *time.Time
}

type orderLineRow struct {
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
	Name       *string
	Price      decimal.NullDecimal
	Category   *string
	ImageURL   *string
}

// loadOrders runs scope against the orders table and attaches the lines of every
// order found, each joined with its current catalog entry.
func loadOrders(ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]OrderView, error) {
	var rows []orderRow
	if err := scope(db.WithContext(ctx).Table("orders")).Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var lines []orderLineRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.menu_item_id,
			oi.quantity,
			m.name,
			m.price,
			m.category,
			m.image_url
		FROM order_items oi
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`, ids).Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]OrderLineView, len(rows))
	for _, l := range lines {
		line := OrderLineView{MenuItemID: l.MenuItemID, Quantity: l.Quantity}
		if l.Name != nil {
			line.MenuItem = &OrderedMenuItem{
				Name:     *l.Name,
				Price:    l.Price.Decimal,
				Category: deref(l.Category),
				ImageURL: deref(l.ImageURL),
			}
		}
		byOrder[l.OrderID] = append(byOrder[l.OrderID], line)
	}

	for _, r := range rows {
		items := byOrder[r.ID]
		if items == nil {
			items = []OrderLineView{}
		}
		orders = append(orders, OrderView{
			ID:                  r.ID,
			UserID:              r.UserID,
			DeliveryAddressID:   r.DeliveryAddressID,
			Items:               items,
			TotalPrice:          r.TotalPrice,
			PaymentMethod:       r.PaymentMethod,
			Status:              r.Status,
			WalletUsed:          r.WalletUsed,
			EstimatedDeliveryAt: r.EstimatedDeliveryAt.UTC(),
			CreatedAt:           r.CreatedAt.UTC(),
			UpdatedAt:           r.UpdatedAt.UTC(),
			CancelledAt:         utcPtr(r.CancelledAt),
			DeliveredAt:         utcPtr(r.DeliveredAt),
		})
	}
	return orders, nil
}

func loadAddresses(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]AddressView, error) {
	var rows []addressRow
	err := db.WithContext(ctx).
		Table("addresses").
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	views := make([]AddressView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
