package middleware

import (
	"context"  // Request-scoped lookups
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"asset_map/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserContextKey is the gin context key holding the authenticated *domain.User
const UserContextKey = "user"

// TokenVerifier resolves an access token to the username it was issued for
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder looks users up by username
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Authenticate resolves a bearer token to a known user.
// It fails with domain.ErrInvalidCredentials when the token is invalid or its user no longer exists.
func Authenticate(ctx context.Context, tokens TokenVerifier, users UserFinder, token string) (*domain.User, error) {
	username, err := tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// JWTAuthMiddleware authenticates the bearer token of every request and stores the user in the context
func JWTAuthMiddleware(tokens TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		scheme, tokenStr, found := strings.Cut(authHeader, " ") // Split scheme and token
		// The auth scheme is case-insensitive
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenStr == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		user, err := Authenticate(c.Request.Context(), tokens, users, tokenStr)
		if errors.Is(err, domain.ErrStore) {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("User lookup failed during authentication")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
			return
		}
		c.Set(UserContextKey, user) // Store the user in context
		c.Next()                    // Proceed to the next handler
	}
}

// CurrentUser returns the user stored by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}
