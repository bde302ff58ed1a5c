package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "COD"
	Online         PaymentMethod = "Online"
)

var ErrInvalidPaymentMethod = errs.NewValueIsInvalidError("paymentMethod")

// ParsePaymentMethod defaults an empty value to CashOnDelivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "":
		return CashOnDelivery, nil
	case CashOnDelivery, Online:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("%w: %q is not one of COD, Online", ErrInvalidPaymentMethod, s)
	}
}

func (p PaymentMethod) Validate() error {
	if p != CashOnDelivery && p != Online {
		return fmt.Errorf("%w: %q is not one of COD, Online", ErrInvalidPaymentMethod, string(p))
	}
	return nil
}

func (p PaymentMethod) String() string {
	return string(p)
}
