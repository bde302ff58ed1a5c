package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// EstimatedDeliveryWindow is added to the placement time to estimate delivery.
const EstimatedDeliveryWindow = 30 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyOrder is returned when an order is placed without items.
	ErrEmptyOrder = errs.NewValueIsRequiredError("items")

	// ErrNotDeletable is returned when deleting an order that is not cancelled.
	ErrNotDeletable = errs.NewInvalidStateError("status", "only cancelled orders can be deleted")

	// ErrNotOrderOwner is returned when a user acts on an order placed by someone else.
	ErrNotOrderOwner = errs.NewAccessDeniedError("order belongs to another user")
)

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - at least one item
//   - totalPrice is computed by the pricing calculator at placement and never changes afterwards
//   - status only moves through Cancel, Advance or an administrative ForceStatus
//   - an order can be deleted only once it is cancelled
type Order struct {
	id                  kernel.UUID
	userID              kernel.UUID
	deliveryAddressID   kernel.UUID
	items               []Item
	totalPrice          kernel.Money
	paymentMethod       PaymentMethod
	status              Status
	walletUsed          kernel.Money
	estimatedDeliveryAt time.Time
	createdAt           time.Time
	updatedAt           time.Time
	cancelledAt         *time.Time
	deliveredAt         *time.Time

	isConstructed bool
}

// NewOrder creates a Pending order. The total must come from the pricing calculator.
//
// Example:
//
//	items := []order.Item{burger, fries}
//	total, err := calculator.Calculate(items, catalog)
//	o, err := order.NewOrder(kernel.NewUUID(), userID, addressID, items, total, order.CashOnDelivery, time.Now())
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	deliveryAddressID kernel.UUID,
	items []Item,
	totalPrice kernel.Money,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	o := &Order{
		totalPrice:          totalPrice,
		status:              Pending,
		walletUsed:          kernel.ZeroMoney(),
		estimatedDeliveryAt: now.Add(EstimatedDeliveryWindow),
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setDeliveryAddressID(deliveryAddressID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state without applying placement rules.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	deliveryAddressID kernel.UUID,
	items []Item,
	totalPrice kernel.Money,
	paymentMethod PaymentMethod,
	status Status,
	walletUsed kernel.Money,
	estimatedDeliveryAt time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	cancelledAt *time.Time,
	deliveredAt *time.Time,
) *Order {
	return &Order{
		id:                  id,
		userID:              userID,
		deliveryAddressID:   deliveryAddressID,
		items:               items,
		totalPrice:          totalPrice,
		paymentMethod:       paymentMethod,
		status:              status,
		walletUsed:          walletUsed,
		estimatedDeliveryAt: estimatedDeliveryAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		cancelledAt:         cancelledAt,
		deliveredAt:         deliveredAt,
		isConstructed:       true,
	}
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) UserID() kernel.UUID { return o.userID }
func (o *Order) DeliveryAddressID() kernel.UUID { return o.deliveryAddressID }
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Status() Status { return o.status }
func (o *Order) WalletUsed() kernel.Money { return o.walletUsed }
func (o *Order) EstimatedDeliveryAt() time.Time { return o.estimatedDeliveryAt }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// MenuItemIDs lists the referenced menu items in line order.
func (o *Order) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.MenuItemID())
	}
	return ids
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// EnsureOwnedBy returns ErrNotOrderOwner unless userID placed the order.
func (o *Order) EnsureOwnedBy(userID kernel.UUID) error {
	if !o.IsOwnedBy(userID) {
		return ErrNotOrderOwner
	}
	return nil
}

// Cancel moves a Pending or Confirmed order to Cancelled and returns the wallet
// amount that must be refunded to the owner. The refund is zero when no wallet
// credit was used. A second call fails before anything is refunded.
func (o *Order) Cancel(now time.Time) (kernel.Money, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return kernel.Money{}, err
	}

	o.status = newStatus
	o.cancelledAt = &now
	o.updatedAt = now
	return o.walletUsed, nil
}

// Advance moves the order one step along the delivery path.
func (o *Order) Advance(now time.Time) error {
	newStatus, err := o.status.Advance()
	if err != nil {
		return err
	}
	o.applyStatus(newStatus, now)
	return nil
}

// ForceStatus sets any valid status, bypassing the forward-only path.
// Forcing Delivered or Cancelled stamps the matching timestamp.
func (o *Order) ForceStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.applyStatus(status, now)
	return nil
}

// EnsureDeletable returns ErrNotDeletable unless the order is cancelled.
func (o *Order) EnsureDeletable() error {
	if o.status != Cancelled {
		return fmt.Errorf("%w: order is %s", ErrNotDeletable, o.status)
	}
	return nil
}

// Reorder creates a new Pending order with the same lines, total, delivery
// address and payment method.
func (o *Order) Reorder(newID kernel.UUID, now time.Time) (*Order, error) {
	return NewOrder(newID, o.userID, o.deliveryAddressID, o.Items(), o.totalPrice, o.paymentMethod, now)
}

func (o *Order) applyStatus(status Status, now time.Time) {
	o.status = status
	o.updatedAt = now
	switch status { //nolint:exhaustive // only terminal statuses carry a timestamp
	case Delivered:
		o.deliveredAt = &now
	case Cancelled:
		o.cancelledAt = &now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setDeliveryAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddressID", err)
	}
	o.deliveryAddressID = addressID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
