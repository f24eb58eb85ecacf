package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps for logs

	"asset_map/internal/domain"     // Importing domain models
	"asset_map/internal/repository" // User directory
	"asset_map/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// LoginRequest is the OAuth2 password-flow form
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"` // Username must be provided
	Password string `form:"password" json:"password" binding:"required"` // Password must be provided
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"` // Signed JWT
	TokenType   string `json:"token_type"`   // Always "bearer"
}

// RegisterHandler creates a user; no authentication is required
func RegisterHandler(users *repository.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.NewUser // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		user, err := users.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, logrus.Fields{"username": req.Username})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // User ID
			"username":  user.Username,                   // Username
			"type":      "register",                      // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User registered")
		c.JSON(http.StatusCreated, user)
	}
}

// LoginHandler checks a username and password and returns a bearer token
func LoginHandler(users *repository.UserDirectory, tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		user, err := users.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			respondError(c, err, logrus.Fields{"username": req.Username})
			return
		}
		if user == nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username is incorrect"})
			return
		}
		// Compare provided password with stored hash
		if !utils.VerifyPassword(req.Password, user.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Please verify your credentials"})
			return
		}
		token, err := tokens.Issue(user.Username) // Generate JWT token
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
