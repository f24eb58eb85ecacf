package utils

import (
	"errors" // Error inspection

	"asset_map/internal/domain" // Domain errors

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashPassword returns a salted bcrypt hash of the plaintext password.
// Passwords longer than bcrypt accepts fail with domain.ErrPasswordTooLong.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A malformed hash never matches.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
