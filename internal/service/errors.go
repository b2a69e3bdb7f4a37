package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrConflict           = errors.New("user with this email already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden: user does not have permission for this action")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrOverpayment        = errors.New("installment exceeds remaining amount")

	// Login reports an unknown email as ErrUserNotFound; resources use their own wrappers.
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrPaymentNotFound  = fmt.Errorf("payment %w", ErrNotFound)
)

// ValidationError lists the request fields that were missing or malformed.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []string
	Reason string // message key; empty means the fields are missing
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// requireFields returns a *ValidationError naming every blank field, or nil.
// Fields are checked in the order given.
func requireFields(fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
