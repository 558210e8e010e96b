package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "prism-ai/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// UpdateTitleRequest is the DTO for the manual context title update endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"Trip planning"`
}

// SetAggregatorKeyRequest is the DTO for storing the OpenRouter fallback key.
type SetAggregatorKeyRequest struct {
	Key string `json:"key" validate:"required,min=1"`
}

// SetModelPreferenceRequest is the DTO for toggling model visibility.
type SetModelPreferenceRequest struct {
	ModelID string `json:"model_id" validate:"required,min=1"`
	Enabled *bool  `json:"enabled" validate:"required"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps domain errors to HTTP status codes and formats a standard JSON
// error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages from the service layer are already
		// user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrNoCredential):
		statusCode = http.StatusUnprocessableEntity
		// User-actionable: the fix is adding an API key in settings.
		message = err.Error()
	case errors.Is(err, app_errors.ErrUnavailable):
		statusCode = http.StatusServiceUnavailable
		message = "A required backend service is unavailable. Please retry."
	case errors.Is(err, app_errors.ErrUpstream):
		statusCode = http.StatusBadGateway
		message = err.Error()
	case errors.Is(err, context.Canceled):
		// The client is gone; the status code is academic.
		statusCode = statusClientClosedRequest
		message = "Request cancelled."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// Nginx's non-standard 499, commonly used for client-cancelled requests.
const statusClientClosedRequest = 499

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
