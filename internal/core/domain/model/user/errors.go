package user

import (
	"errors"
	"fmt"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// InvalidEmailError indicates that an email address does not match the
// accepted format.
type InvalidEmailError struct {
	Email string
}

// NewInvalidEmailError creates an InvalidEmailError for the given address.
func NewInvalidEmailError(email string) *InvalidEmailError {
	return &InvalidEmailError{Email: email}
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidEmail, e.Email)
}

func (e *InvalidEmailError) Unwrap() error {
	return ErrInvalidEmail
}

// EmailAlreadyExistsError indicates that another user is already registered
// with the given address. It originates at the repository boundary, where
// uniqueness is enforced.
type EmailAlreadyExistsError struct {
	Email string
}

// NewEmailAlreadyExistsError creates an EmailAlreadyExistsError for the given address.
func NewEmailAlreadyExistsError(email string) *EmailAlreadyExistsError {
	return &EmailAlreadyExistsError{Email: email}
}

func (e *EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %q", ErrEmailAlreadyExists, e.Email)
}

func (e *EmailAlreadyExistsError) Unwrap() error {
	return ErrEmailAlreadyExists
}
