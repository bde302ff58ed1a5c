package services

import (
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DefaultAddressPolicy decides which address carries the default flag.
type DefaultAddressPolicy struct{}

func NewDefaultAddressPolicy() DefaultAddressPolicy {
	return DefaultAddressPolicy{}
}

// ShouldBeDefault reports whether a new address becomes the default: either the
// caller asked for it or the user has no address yet.
func (DefaultAddressPolicy) ShouldBeDefault(requested bool, existing int) bool {
	return requested || existing == 0
}

// PickDeliveryAddress returns the default address, or the oldest one when no
// default is set. It returns nil for an empty list.
func (DefaultAddressPolicy) PickDeliveryAddress(addresses []*address.Address) *address.Address {
	var oldest *address.Address
	for _, a := range addresses {
		if a.IsDefault() {
			return a
		}
		if oldest == nil || a.CreatedAt().Before(oldest.CreatedAt()) {
			oldest = a
		}
	}
	return oldest
}

// PickReplacementDefault chooses the oldest remaining address once the default
// identified by removedID is gone.
func (DefaultAddressPolicy) PickReplacementDefault(addresses []*address.Address, removedID kernel.UUID) *address.Address {
	var oldest *address.Address
	for _, a := range addresses {
		if a.ID().IsEqual(removedID) {
			continue
		}
		if oldest == nil || a.CreatedAt().Before(oldest.CreatedAt()) {
			oldest = a
		}
	}
	return oldest
}
