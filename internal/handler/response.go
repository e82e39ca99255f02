package handler

// ErrorResponse is the standard error envelope for every endpoint.
type ErrorResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

// Error codes.
const (
	codeValidationError = "VALIDATION_ERROR"
	codeAuthError       = "AUTH_ERROR"
	codeNotFound        = "NOT_FOUND"
	codeInternalError   = "INTERNAL_ERROR"
)

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}
