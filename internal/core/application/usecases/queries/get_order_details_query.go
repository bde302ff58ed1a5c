package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery fetches one order with its customer, delivery address and
// catalog entries resolved. Admins may read any order; everybody else only their own.
type GetOrderDetailsQuery struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	asAdmin  bool

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID, callerID kernel.UUID, asAdmin bool) (GetOrderDetailsQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{
		orderID:  orderID,
		callerID: callerID,
		asAdmin:  asAdmin,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID  { return q.orderID }
func (q GetOrderDetailsQuery) CallerID() kernel.UUID { return q.callerID }
func (q GetOrderDetailsQuery) AsAdmin() bool         { return q.asAdmin }

// CustomerView is the slice of a user shown next to their order.
type CustomerView struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type GetOrderDetailsQueryResponse struct {
	OrderView

	// Customer and DeliveryAddress are nil when the referenced row no longer exists.
	Customer        *CustomerView `json:"customer"`
	DeliveryAddress *AddressView  `json:"deliveryAddress"`
}
