// Package api defines the shared HTTP response envelopes used by all handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`

	// Fields itemizes per-field validation failures on 400 responses.
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is the body returned for successful requests with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}
