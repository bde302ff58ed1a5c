// Package ports declares the contracts the application core needs from the outside:
// repositories per aggregate, the unit of work that binds them to one transaction,
// the order event publisher and password hashing.
package ports
