// Package common defines shared constants and sentinel errors used across
// client and server layers of GophForum. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrUserExists         = errors.New("User already registered")
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrForbidden          = errors.New("forbidden")

	// Validation errors.
	ErrInvalidCategory = errors.New("unknown category")
	ErrMissingField    = errors.New("required field is empty")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrTooLarge        = errors.New("file is too large")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// User-facing error kinds. An *Error matches its kind with errors.Is.
var (
	ErrAuth       = errors.New("auth error")
	ErrTransfer   = errors.New("transfer error")
	ErrValidation = errors.New("validation error")
)

// Error carries a human-readable message that is shown to the user as is,
// tagged with one of ErrAuth, ErrTransfer or ErrValidation.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewAuthError reports bad credentials, duplicate sign-up or a rejected token.
func NewAuthError(msg string) error { return &Error{Kind: ErrAuth, Message: msg} }

// NewTransferError reports a failed query or upload.
func NewTransferError(msg string) error { return &Error{Kind: ErrTransfer, Message: msg} }

// NewValidationError reports input rejected before or by the backend.
func NewValidationError(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }
