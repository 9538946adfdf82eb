package models

// Response messages
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
	MsgInternalServer     = "Internal server error"
)

// ErrorResponse is the body returned when a single entity could not be found
// or the request failed unexpectedly
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned for any rejected input.
// It deliberately does not say which rule failed.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a new error response with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates the generic validation error response
func NewValidationErrorResponse() ValidationErrorResponse {
	return ValidationErrorResponse{Errors: []string{MsgValidationErrors}}
}
