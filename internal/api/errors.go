package api

import (
	"errors"
	"net/http"

	"github.com/nshelest/mesto-api/internal/api/shared"
	"github.com/nshelest/mesto-api/internal/domain"
	"github.com/nshelest/mesto-api/internal/service/auth"
	"github.com/nshelest/mesto-api/internal/store"
)

// internalErrorMessage is the only text a client ever sees for a 500.
// The original diagnostic is logged, never echoed.
const internalErrorMessage = "An internal server error occurred"

// unauthorizedMessage is the fixed text for every authentication failure.
// Missing header, malformed token, bad signature and expiry are deliberately
// indistinguishable to the client.
const unauthorizedMessage = "authorization required"

// MapErrorToStatusCode maps internal errors to the closed set of
// client-facing HTTP status codes. This is the only place that decides
// which taxonomy kind a failure belongs to.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, client-facing message for the
// error. Validation and conflict failures keep their specific text;
// unauthorized, forbidden and internal failures get fixed generic strings
// so nothing about the server's internals or which check failed leaks out.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return internalErrorMessage
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return unauthorizedMessage

	case errors.Is(err, domain.ErrForbidden):
		return "access to the requested resource is forbidden"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "card not found"

	case errors.Is(err, store.ErrNotFound):
		return "resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "a user with this email already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "resource already exists"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		// ValidationError carries a safe field-level message.
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return vErr.Error()
		}
		return "invalid request data"

	case errors.Is(err, domain.ErrInvalidID):
		return "invalid resource ID"

	default:
		return internalErrorMessage
	}
}

// HandleAPIError is the single render point for failure paths. It maps the
// error to its taxonomy status and safe message, logs the original, and
// writes the envelope. A non-empty messageOverride replaces the mapped
// message for non-500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if messageOverride != "" && status != http.StatusInternalServerError {
		message = messageOverride
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
