package service

import (
	"errors"
	"unicode"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 100
)

// ErrWeakPassword wraps every password composition failure so callers
// can treat them uniformly as validation errors.
var ErrWeakPassword = errors.New("password does not meet complexity requirements")

// PasswordValidator enforces password composition rules: length bounds
// plus at least one lowercase letter, one uppercase letter, one digit
// and one symbol.
type PasswordValidator struct{}

// NewPasswordValidator creates a new password validator.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// Validate checks a candidate password against the composition rules.
// The returned error wraps ErrWeakPassword and names the first rule the
// password fails.
func (v *PasswordValidator) Validate(password string) error {
	if len(password) < passwordMinLength {
		return failure("password must be at least 8 characters")
	}
	if len(password) > passwordMaxLength {
		return failure("password must be at most 100 characters")
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case !hasLower:
		return failure("password must contain a lowercase letter")
	case !hasUpper:
		return failure("password must contain an uppercase letter")
	case !hasDigit:
		return failure("password must contain a digit")
	case !hasSymbol:
		return failure("password must contain a symbol")
	}
	return nil
}

type weakPasswordError struct {
	reason string
}

func (e *weakPasswordError) Error() string { return e.reason }

func (e *weakPasswordError) Unwrap() error { return ErrWeakPassword }

func failure(reason string) error {
	return &weakPasswordError{reason: reason}
}
