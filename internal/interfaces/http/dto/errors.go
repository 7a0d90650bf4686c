package dto

import "net/http"

// Error codes returned by the API. Domain errors carry one of these codes;
// anything else maps to ErrCodeInternal.
const (
	// ErrCodeInvalidInput is used for malformed or invalid request data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeNotFound is used when the addressed resource does not exist
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeReferenceNotFound is used when a referenced resource does not
	// exist; the request itself is at fault, so it maps to 400 rather than 404
	ErrCodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	// ErrCodeInternal is used for unexpected failures
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorStatusMap maps error codes to HTTP status codes
var errorStatusMap = map[string]int{
	ErrCodeInvalidInput:      http.StatusBadRequest,
	ErrCodeReferenceNotFound: http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// defaulting to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
