package domain

import (
	"errors" // Sentinel errors
	"fmt"    // Error wrapping
)

// Error kinds shared by the store, the auth gate and the HTTP layer.
// Callers match them with errors.Is.
var (
	ErrValidation         = errors.New("validation error")    // Malformed id, field or body
	ErrConflict           = errors.New("already exists")      // Duplicate email, username or mnemonic
	ErrNotFound           = errors.New("not found")           // No record matched
	ErrInvalidCredentials = errors.New("invalid credentials") // Bad, expired or missing token, or wrong password
	ErrStore              = errors.New("store failure")       // Database unreachable or operation failed
)

// Specific errors, each matching one of the kinds above
var (
	ErrInvalidID       = fmt.Errorf("invalid id: %w: %w", ErrValidation, ErrNotFound)
	ErrUnknownField    = fmt.Errorf("unknown lookup field: %w", ErrValidation)
	ErrPasswordTooLong = fmt.Errorf("password longer than 72 bytes: %w", ErrValidation)
	ErrEmailTaken      = fmt.Errorf("email: %w", ErrConflict)
	ErrUsernameTaken   = fmt.Errorf("username: %w", ErrConflict)
	ErrMnemonicTaken   = fmt.Errorf("mnemonic: %w", ErrConflict)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrAssetNotFound   = fmt.Errorf("asset %w", ErrNotFound)
)
