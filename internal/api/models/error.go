// Package models provides request and response models for the CityAir API.
package models

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body returned for every failed request,
// e.g. {"error": "City not found"}. Clients depend on this exact shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// Write writes the error as JSON with the given status code.
func (e *ErrorResponse) Write(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}
