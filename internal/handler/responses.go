package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs the underlying error and writes the mapped
// user-facing response for it
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Economy messages
	ErrMsgNotEnoughRubiesError = "Not enough rubies"
	ErrMsgAccountNotFoundError = "Account not found"

	// Pack messages
	ErrMsgPackNotConfiguredError = "That pack type does not exist"

	// Listing messages
	ErrMsgInstanceNotFoundError = "Card not found"
	ErrMsgInstanceLockedError   = "That card is locked and cannot be listed"
	ErrMsgNotOwnerError         = "You don't own that card"
	ErrMsgAlreadyListedError    = "That card is already listed for sale"
	ErrMsgListingNotFoundError  = "Listing not found"
	ErrMsgListingNotActiveError = "That listing is no longer available"
	ErrMsgSelfPurchaseError     = "You can't buy your own listing"

	// Configuration messages
	ErrMsgInvalidDropRatesError = "Drop rates must sum to 100"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughRubiesError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrPackTypeNotConfigured):
		return http.StatusNotFound, ErrMsgPackNotConfiguredError
	case errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusNotFound, ErrMsgInstanceNotFoundError
	case errors.Is(err, domain.ErrInstanceLocked):
		return http.StatusBadRequest, ErrMsgInstanceLockedError
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrAlreadyListed):
		return http.StatusConflict, ErrMsgAlreadyListedError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrListingNotActive):
		return http.StatusConflict, ErrMsgListingNotActiveError
	case errors.Is(err, domain.ErrSelfPurchase):
		return http.StatusBadRequest, ErrMsgSelfPurchaseError
	case errors.Is(err, domain.ErrInvalidDropRates):
		return http.StatusBadRequest, ErrMsgInvalidDropRatesError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNoTemplatesForRarity):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
