// Package errs provides the error kinds shared by the food delivery service.
//
// Every kind has a sentinel (ErrValueIsRequired, ErrObjectNotFound, ErrConflict, ...)
// and a struct type carrying the details. The struct types unwrap to their sentinel,
// so callers classify with errors.Is and the HTTP boundary maps kinds to status codes:
//
//	ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange -> 400
//	ErrInvalidState                                             -> 400
//	ErrUnauthenticated                                          -> 401
//	ErrAccessDenied                                             -> 403
//	ErrObjectNotFound                                           -> 404
//	ErrConflict                                                 -> 409
//	ErrUnavailable                                              -> 503
//
// Use-case specific errors are declared as package-level values of these types and
// wrapped with fmt.Errorf("%w: ...") when more detail is needed.
//
// IsUnavailable classifies failures of the database or network as transient.
package errs
