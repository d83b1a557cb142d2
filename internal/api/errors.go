package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/giftlist-api/internal/api/shared"
	"github.com/phrazzld/giftlist-api/internal/service"
)

const msgUnexpected = "An unexpected error occurred"

// MapErrorToStatusCode maps a service error kind to an HTTP status code.
// Anything without a known kind is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrFatal):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the caller-facing message of err. Only the
// message of a classified, non-fatal service error is passed through.
func GetSafeErrorMessage(err error) string {
	var svcErr *service.Error
	if err == nil || !errors.As(err, &svcErr) || MapErrorToStatusCode(err) == http.StatusInternalServerError {
		return msgUnexpected
	}
	if svcErr.Message == "" {
		return http.StatusText(MapErrorToStatusCode(err))
	}
	return svcErr.Message
}

// HandleAPIError writes the response for an error returned by a service.
// The full error is logged, never sent.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var svcErr *service.Error
	if status == http.StatusBadRequest && errors.As(err, &svcErr) {
		shared.RespondWithErrorDetails(w, r, status, message, svcErr.Violations, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
