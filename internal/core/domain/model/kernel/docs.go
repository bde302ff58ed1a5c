// Package kernel holds the value objects shared by every aggregate of the food delivery domain.
//
// UUID identifies aggregates, Money carries prices, totals and wallet balances
// on top of shopspring/decimal, and GeoPoint stores the coordinates of an address.
// None of them has a usable zero value except Money, where zero means nothing owed.
package kernel
