package session

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrMissingCredentials indicates the email or password is empty.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials indicates the verifier rejected the pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnavailable indicates the verifier could not be reached.
	ErrUnavailable = errors.New("verifier unavailable")
	// ErrWhitespace indicates an input contained whitespace.
	ErrWhitespace = errors.New("whitespace not allowed")
)

// Credentials holds the two text inputs of the login form.
type Credentials struct {
	Email    string
	Password string
}

// Complete reports whether both fields are non-empty.
func (credentials Credentials) Complete() bool {
	return credentials.Email != "" && credentials.Password != ""
}

// Verifier checks a credential pair. A nil error means success.
type Verifier interface {
	Verify(credentials Credentials) error
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(Credentials) error

// Verify calls fn.
func (fn VerifierFunc) Verify(credentials Credentials) error {
	return fn(credentials)
}

// PresenceVerifier accepts any pair where both fields are filled in.
type PresenceVerifier struct{}

// Verify fails with ErrMissingCredentials when a field is empty.
func (PresenceVerifier) Verify(credentials Credentials) error {
	if !credentials.Complete() {
		return ErrMissingCredentials
	}
	return nil
}

// ValidateInput rejects values that contain whitespace.
func ValidateInput(value string) error {
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return ErrWhitespace
	}
	return nil
}
