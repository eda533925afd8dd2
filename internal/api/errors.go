package api

import (
	"errors"
	"net/http"

	"github.com/voyago/voyago-api/internal/api/shared"
	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/generation"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/service/auth"
	"github.com/voyago/voyago-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This keeps
// status decisions in one place so handlers cannot leak internal error types.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrItineraryNotFound),
		errors.Is(err, store.ErrLocationNotFound):
		return http.StatusNotFound

	// Duplicate signups report as a plain bad request rather than a
	// conflict; clients treat both the same way.
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		isDomainValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// isDomainValidationError reports whether err is one of the entity
// validation sentinels from the domain package.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyName,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrEmptyCityName,
		domain.ErrNegativeLocationCount,
		domain.ErrNoCities,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, service.ErrNotOwner):
		return "You do not own this itinerary"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrItineraryNotFound):
		return "Itinerary not found"

	case errors.Is(err, store.ErrLocationNotFound):
		return "Location not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already in use"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		isDomainValidationError(err):
		return "Invalid request data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, generation.ErrContentBlocked):
		return "Generated content was blocked"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "Could not parse generated locations"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate locations"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and writes a sanitized error
// response. An empty userMessage falls back to GetSafeErrorMessage. When the
// chain contains a ResponseFormatError, the provider's raw text is attached
// as rawResponse.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}

	var formatErr *generation.ResponseFormatError
	if errors.As(err, &formatErr) {
		shared.RespondWithJSON(w, r, status, shared.ErrorResponse{
			Error:       userMessage,
			Code:        status,
			TraceID:     shared.GetTraceID(r.Context()),
			RawResponse: formatErr.RawResponse,
		})
		return
	}

	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
