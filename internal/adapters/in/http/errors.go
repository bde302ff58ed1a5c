package http

import (
	"errors"
	"fmt"
	"net/http"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

const (
	unavailableMessage = "Server is currently unavailable. Please try again later."
	internalMessage    = "Something went wrong. Please try again later."
)

// statusFor maps an error kind to a status code and a message that is safe to
// show to the client. Database causes never reach the message.
func statusFor(err error) (int, string) {
	var (
		httpErr  *echo.HTTPError
		unauth   *errs.UnauthenticatedError
		denied   *errs.AccessDeniedError
		notFound *errs.ObjectNotFoundError
		conflict *errs.ConflictError
		invalid  *errs.InvalidStateError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errs.IsUnavailable(err):
		return http.StatusServiceUnavailable, unavailableMessage
	case errors.As(err, &unauth):
		return http.StatusUnauthorized, unauth.Reason
	case errors.As(err, &denied):
		return http.StatusForbidden, denied.Reason
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s not found", notFound.ParamName)
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Reason
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Reason
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

// NewErrorHandler renders every handler error as a failure envelope.
func NewErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusFor(err)
		logger := logging.FromContext(c.Request().Context())
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed", "status", status, "error", err)
		} else {
			logger.DebugContext(c.Request().Context(), "request rejected", "status", status, "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, failure(message))
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
