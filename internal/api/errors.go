package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"asset_map/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// statusFor maps a domain error to the response status and detail message.
// Conflicts answer 404, which existing clients expect.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound, "The ID does not exist."
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusNotFound, "The user exists, please choose another email."
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusNotFound, "The user exists, please choose another username."
	case errors.Is(err, domain.ErrMnemonicTaken):
		return http.StatusNotFound, "The asset exists, please choose another mnemonic."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, "Asset not found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusNotFound, "The record already exists."
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid authentication credentials"
	case errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusUnprocessableEntity, "Password must be at most 72 bytes"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "Invalid request"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes err as a JSON detail body; server-side failures are logged with fields
func respondError(c *gin.Context, err error, fields logrus.Fields) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		entry := logrus.WithFields(fields)
		entry.WithField("error", err.Error()).Error(detail) // Log the failure with context
	}
	c.JSON(status, gin.H{"detail": detail})
}

// respondInvalidBody rejects a request whose body failed binding
func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request: " + err.Error()})
}
