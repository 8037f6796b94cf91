// Package apierror provides the standardized error response structure and the
// domain error taxonomy for the API. All errors returned to clients go through
// this package to ensure consistency and to prevent leaking internal details
// (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
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

// Domain sentinels. Services return these (possibly wrapped); handlers map
// them to HTTP statuses with errors.Is.
var (
	// ErrNoEncontrado: the referenced entity key does not exist (HTTP 404).
	ErrNoEncontrado = errors.New("recurso no encontrado")

	// ErrYaExiste: create with a natural key that is already taken (HTTP 409).
	ErrYaExiste = errors.New("el recurso ya existe")

	// ErrStockInsuficiente: an invoice line requests more units than available.
	// The whole invoice operation is aborted (HTTP 400).
	ErrStockInsuficiente = errors.New("stock insuficiente")

	// ErrTokenInvalido covers absent, mismatched and expired reset tokens with
	// one message so the response never reveals which case occurred (HTTP 400).
	ErrTokenInvalido = errors.New("token invalido o expirado")

	// ErrCredenciales: login failure, same message for unknown user and wrong
	// password (HTTP 401).
	ErrCredenciales = errors.New("credenciales invalidas")
)
