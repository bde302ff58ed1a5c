package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand asks to place a new order for a user.
//
// Example:
//
//	burger, _ := order.NewItem(burgerID, 2)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), userID, []order.Item{burger}, order.CashOnDelivery, nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	items         []order.Item
	paymentMethod order.PaymentMethod
	addressID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request shape. addressID is optional;
// without it the user's default (or oldest) address is used.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []order.Item,
	paymentMethod order.PaymentMethod,
	addressID *kernel.UUID,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setAddressID(addressID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// AddressID returns the explicitly chosen delivery address, or nil.
func (c PlaceOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

// MenuItemIDs lists the referenced menu items in request order.
func (c PlaceOrderCommand) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.MenuItemID())
	}
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrEmptyOrder
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *PlaceOrderCommand) setAddressID(addressID *kernel.UUID) error {
	if addressID == nil {
		return nil
	}
	if err := addressID.Validate(); err != nil {
		return err
	}
	id := *addressID
	c.addressID = &id
	return nil
}
