// Package order contains the Order aggregate of the food delivery domain.
//
// An order is placed by a user against one of their addresses with one or more
// menu item lines. Its total is fixed at placement, its status follows the
// machine documented on Status, and it can only be removed once cancelled.
package order
