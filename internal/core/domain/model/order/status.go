package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ─> Confirmed ─> Preparing ─> OutForDelivery ─> Delivered
//	   │           │
//	   └───────────┴─> Cancelled
//
// Delivered and Cancelled are terminal. Administrators may force any valid
// status through Order.ForceStatus, bypassing the forward-only path.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

var (
	// ErrInvalidStatus is returned when a status name is not one of the six known values.
	ErrInvalidStatus = errs.NewValueIsInvalidError("status")
	// ErrInvalidTransition is returned when the current status does not permit the requested move.
	ErrInvalidTransition = errs.NewInvalidStateError("status", "order status does not permit this operation")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// Statuses returns every valid status in canonical order. Reporting and the
// administrative override both rely on this ordering.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts a wire name such as "out_for_delivery" into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not one of pending, confirmed, preparing, out_for_delivery, delivered, cancelled",
		ErrInvalidStatus, s)
}

// Validate rejects values outside Pending..Cancelled.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatus, s)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further regular transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Cancel moves Pending or Confirmed to Cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Confirmed:
		return Cancelled, nil
	case Cancelled:
		return Unknown, fmt.Errorf("%w: order already cancelled", ErrInvalidTransition)
	default:
		return Unknown, fmt.Errorf("%w: cannot cancel an order with status %s", ErrInvalidTransition, s)
	}
}

// Advance moves one step along the delivery path.
func (s Status) Advance() (Status, error) {
	switch s {
	case Pending:
		return Confirmed, nil
	case Confirmed:
		return Preparing, nil
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return Unknown, fmt.Errorf("%w: cannot advance an order with status %s", ErrInvalidTransition, s)
	}
}
