// Package apierror provides the standardized error response structures for
// the API. All 4xx bodies go through this package so clients see a uniform
// envelope and internal details (stack traces, DB errors) never leak.
package apierror

// APIError is the canonical error envelope for 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
