package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/player"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
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
		// Headers are already sent, so all we can do is log
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

// User-facing error messages for service errors.
// These are stable strings derived from domain errors; clients may match on
// them, so changing one is a breaking change.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError   = "Authentication failed. Please check your credentials."
	ErrMsgSessionExpiredError = "Session expired. Log in again."

	// Player messages
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgUsernameTakenError  = "Username is already taken"

	// Merchant and market messages
	ErrMsgMerchantNotFoundError = "Merchant not found"
	ErrMsgPriceNotFoundError    = "No price quoted for that item"
	ErrMsgItemNotOfferedError   = "Merchant does not sell that item"

	// Inventory messages
	ErrMsgItemNotOwnedError      = "You don't own that item"
	ErrMsgInsufficientItemsError = "Not enough of that item"
	ErrMsgInventoryFullError     = "Inventory is full"

	// Trade messages
	ErrMsgNotEnoughMoneyError = "Not enough money"

	// License messages
	ErrMsgLicenseTooLowError  = "License tier too low"
	ErrMsgMaxTierError        = "License is already at the maximum tier"
	ErrMsgNotEnoughTrustError = "Not enough trust points"

	// Bonus messages
	ErrMsgBonusNotReadyError = "Daily bonus not ready"
	ErrMsgBonusNotReadyFmt   = "Daily bonus not ready. Try again in %dh"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status code and
// a stable user-facing message. Handlers call it for every service error so
// the same failure always produces the same response.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// An early bonus claim carries the remaining wait; surface it
	var bonusErr player.BonusNotReadyError
	if errors.As(err, &bonusErr) {
		return http.StatusTooManyRequests, fmt.Sprintf(ErrMsgBonusNotReadyFmt, bonusErr.RemainingHours())
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPlayerExists):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrMerchantNotFound):
		return http.StatusNotFound, ErrMsgMerchantNotFoundError
	case errors.Is(err, domain.ErrPriceNotFound):
		return http.StatusNotFound, ErrMsgPriceNotFoundError
	case errors.Is(err, domain.ErrItemNotOffered):
		return http.StatusBadRequest, ErrMsgItemNotOfferedError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusBadRequest, ErrMsgItemNotOwnedError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusBadRequest, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrLicenseInsufficient):
		return http.StatusForbidden, ErrMsgLicenseTooLowError
	case errors.Is(err, domain.ErrMaxLicenseTier):
		return http.StatusBadRequest, ErrMsgMaxTierError
	case errors.Is(err, domain.ErrInsufficientTrust):
		return http.StatusForbidden, ErrMsgNotEnoughTrustError
	case errors.Is(err, domain.ErrBonusNotReady):
		return http.StatusTooManyRequests, ErrMsgBonusNotReadyError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, ErrMsgSessionExpiredError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short unmapped messages pass through so mock errors stay visible in
	// tests; anything long or system-level collapses to the generic message
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
