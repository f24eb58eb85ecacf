package utils

import (
	"errors" // Error wrapping
	"fmt"    // Error formatting
	"time"   // Time for token expiration

	"asset_map/internal/domain" // Domain errors

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenIssuer signs and verifies access tokens carrying the username as subject
type TokenIssuer struct {
	secret   []byte            // HMAC signing key
	method   jwt.SigningMethod // Signing algorithm
	duration time.Duration     // Token lifetime
	now      func() time.Time  // Clock, replaced in tests
}

// NewTokenIssuer builds a TokenIssuer for an HMAC algorithm (HS256, HS384 or HS512)
func NewTokenIssuer(secret, algorithm string, duration time.Duration) (*TokenIssuer, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	return &TokenIssuer{secret: []byte(secret), method: method, duration: duration, now: time.Now}, nil
}

// Issue creates a signed token for username that expires after the configured duration
func (t *TokenIssuer) Issue(username string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,                                // Username claim
		ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)), // Absolute expiry
		IssuedAt:  jwt.NewNumericDate(now),                 // Issued at current time
	}
	token := jwt.NewWithClaims(t.method, claims) // Create token with claims
	return token.SignedString(t.secret)          // Sign the token with the secret
}

// Verify checks the token's signature and expiry and returns its subject.
// Every failure is reported as domain.ErrInvalidCredentials.
func (t *TokenIssuer) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, err)
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidCredentials
	}
	return claims.Subject, nil
}
