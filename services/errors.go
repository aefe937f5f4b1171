package services

import (
	"Henteklar/repositories"
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("forbidden")
	ErrRemoteUnavailable = errors.New("remote service unavailable")
)

// ValidationError carries a user-facing message. Code is the translation key.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func validationError(code, message string) error {
	return &ValidationError{Code: code, Message: message}
}

// AuthError is a sign-in failure reported by the identity provider,
// with Code in the provider's "auth/..." form.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Code + ": " + e.Message
}

// storeErr classifies a repository failure for callers of the service layer.
func storeErr(op string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteUnavailable, err)
}
