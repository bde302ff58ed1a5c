// Package address contains the Address aggregate. A user keeps one or more
// addresses, exactly one of which is the default delivery target; an admin's
// address doubles as the kitchen location for the menu items they create.
package address
