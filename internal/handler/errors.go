package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidPath      = "Invalid path parameter"
	ErrMsgGenericServerErr = "Something went wrong"
	ErrMsgUnknownError     = "Unknown error"
	ErrMsgReloadFailed     = "Failed to reload configuration"

	ErrMsgModelNotLoaded  = "No configuration loaded yet. Please try again later."
	ErrMsgRecipeNotFound  = "Recipe not found"
	ErrMsgFactoryNotFound = "Factory not found"
	ErrMsgItemNotFound    = "Item not found"
)

// Success messages for API responses
const (
	MsgReloadedSuccess = "Configuration reloaded"
	MsgReloadUnchanged = "Configuration unchanged"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
	LogMsgReloadFailed = "Reload request failed"
	LogMsgNotReady     = "Readiness check failed"
)

// mapServiceError maps domain errors to an HTTP status and a user-facing message
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrModelNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgModelNotLoaded
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFound
	case errors.Is(err, domain.ErrFactoryNotFound):
		return http.StatusNotFound, ErrMsgFactoryNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	}
	return http.StatusInternalServerError, ErrMsgGenericServerErr
}
