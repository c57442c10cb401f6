package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pitwall/pitgames/internal/model"
)

// FailureResponse is the envelope for failed operations
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError converts an error to a status code and failure envelope.
// No internal detail leaks: unknown errors become a generic message.
func WriteError(w http.ResponseWriter, err error) {
	status, message := classify(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(FailureResponse{Success: false, Error: message})
}

// classify maps errors to HTTP statuses and user-visible messages
func classify(err error) (int, string) {
	var ire *invalidRequestError
	if errors.As(err, &ire) {
		return http.StatusBadRequest, ire.message
	}

	switch {
	// An expired session reads as not-found to the caller; the cleanup
	// side effect has already happened by the time we get here
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrSessionExpired):
		return http.StatusNotFound, "session not found"

	case errors.Is(err, model.ErrChampionshipNotFound):
		return http.StatusNotFound, "championship not found"

	case errors.Is(err, model.ErrDriverNotFound):
		return http.StatusNotFound, "driver not found"

	case errors.Is(err, model.ErrNoEligibleDriver):
		return http.StatusNotFound, "no puzzle available"

	case errors.Is(err, model.ErrInvalidPlayerSlot),
		errors.Is(err, model.ErrNoChampionshipSelected),
		errors.Is(err, model.ErrGuessLengthMismatch):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, model.ErrInsufficientDrivers):
		return http.StatusConflict, err.Error()

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// invalidRequestError carries a handler-supplied bad-request message
type invalidRequestError struct {
	message string
}

func (e *invalidRequestError) Error() string {
	return e.message
}

// NewInvalidRequestError creates a 400-mapped error with the given message
func NewInvalidRequestError(message string) error {
	return &invalidRequestError{message: message}
}
