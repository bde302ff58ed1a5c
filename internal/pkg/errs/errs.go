package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrConflict          = errors.New("conflict")
	ErrAccessDenied      = errors.New("access denied")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidState      = errors.New("invalid state")
	ErrUnavailable       = errors.New("service unavailable")
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError reports a missing aggregate or record.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError reports a write that collides with existing state,
// such as a duplicate unique key.
type ConflictError struct {
	ParamName string
	Reason    string
	Cause     error
}

func NewConflictError(paramName, reason string) *ConflictError {
	return &ConflictError{ParamName: paramName, Reason: reason}
}

func NewConflictErrorWithCause(paramName, reason string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AccessDeniedError reports an authenticated caller acting on something it does not own.
type AccessDeniedError struct {
	Reason string
	Cause  error
}

func NewAccessDeniedError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

func NewAccessDeniedErrorWithCause(reason string, cause error) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrAccessDenied, e.Reason), e.Cause)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

type UnauthenticatedError struct {
	Reason string
	Cause  error
}

func NewUnauthenticatedError(reason string) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason}
}

func NewUnauthenticatedErrorWithCause(reason string, cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason, Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Reason), e.Cause)
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// InvalidStateError reports an operation the aggregate's current state does not permit.
type InvalidStateError struct {
	ParamName string
	Reason    string
	Cause     error
}

func NewInvalidStateError(paramName, reason string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Reason: reason}
}

func NewInvalidStateErrorWithCause(paramName, reason string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Reason: reason, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrInvalidState, e.Reason), e.Cause)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// UnavailableError wraps a failure of an external collaborator.
type UnavailableError struct {
	Resource string
	Cause    error
}

func NewUnavailableError(resource string, cause error) *UnavailableError {
	return &UnavailableError{Resource: resource, Cause: cause}
}

func (e *UnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnavailable, e.Resource), e.Cause)
}

func (e *UnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnavailable}
	}
	return []error{ErrUnavailable, e.Cause}
}
