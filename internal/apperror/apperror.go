// Package apperror provides the standardized error values used across the
// workflow boundary. Services return these instead of leaking store internals;
// callers branch on them with errors.Is.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailRegistrado is returned by registration when another account
	// already holds the same email (case-sensitive exact match).
	ErrEmailRegistrado = errors.New("el email ya está registrado")

	// ErrCarritoVacio is returned by checkout when the cart has no lines.
	ErrCarritoVacio = errors.New("el carrito está vacío")

	// ErrNoEncontrado marks lookups that callers treat as hard failures
	// (e.g. order status update on an unknown id). Plain by-id reads
	// represent absence as a nil result instead.
	ErrNoEncontrado = errors.New("registro no encontrado")
)

// ValidationError is a field-scoped, recoverable input error. No state
// mutation has occurred when one is returned.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string { return e.Mensaje }

func NewValidation(campo, mensaje string) *ValidationError {
	return &ValidationError{Campo: campo, Mensaje: mensaje}
}

// Store wraps an unexpected persistence failure with the failing operation,
// keeping the underlying message reachable via errors.Unwrap.
func Store(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
