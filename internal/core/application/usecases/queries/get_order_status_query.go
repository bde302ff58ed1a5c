package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery reads the current status of one of the caller's orders.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(orderID, userID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderStatusQuery{}, err
	}
	return GetOrderStatusQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderStatusQuery) UserID() kernel.UUID  { return q.userID }

type GetOrderStatusQueryResponse struct {
	Status string `json:"status"`
	// Message is the sentence shown to the customer, e.g. "Your order is currently preparing".
	Message string `json:"orderStatus"`
}
