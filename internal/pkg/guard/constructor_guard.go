package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks values that were produced by their constructor.
// Embed it in commands, queries and value objects; the zero value fails Validate,
// so a struct literal that skipped the constructor is rejected before use.
//
//	type PlaceOrderCommand struct {
//	    guard.ConstructorGuard
//	    userID kernel.UUID
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.ConstructorGuard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
