package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps for logs

	"asset_map/internal/domain"     // Importing domain models
	"asset_map/internal/repository" // User directory
	"asset_map/internal/utils"      // Asset cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UpdateUserRequest replaces a user's profile
type UpdateUserRequest struct {
	ID       string `json:"id" binding:"required"`              // User ID
	Username string `json:"username" binding:"required,max=64"` // New username
	Email    string `json:"email" binding:"required,email"`     // New email
}

// PasswordUpdateRequest carries the new plaintext password
type PasswordUpdateRequest struct {
	Password string `json:"password" binding:"required"` // New password
}

// ListUsersHandler returns every user
func ListUsersHandler(users *repository.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			respondError(c, err, logrus.Fields{"op": "list_users"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetUserHandler returns the user with the id in the path
func GetUserHandler(users *repository.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := domain.ParseID(c.Param("id"))
		if !ok {
			respondError(c, domain.ErrInvalidID, nil)
			return
		}
		user, err := users.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": id})
			return
		}
		if user == nil {
			respondError(c, domain.ErrUserNotFound, nil)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUserHandler replaces username and email of the user named in the body
func UpdateUserHandler(users *repository.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		user, err := users.Update(c.Request.Context(), domain.User{ID: req.ID, Username: req.Username, Email: req.Email})
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": req.ID})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdatePasswordHandler rehashes the password of the user in the path
func UpdatePasswordHandler(users *repository.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := domain.ParseID(id); !ok {
			respondError(c, domain.ErrInvalidID, nil)
			return
		}
		var req PasswordUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		if err := users.UpdatePassword(c.Request.Context(), id, req.Password); err != nil {
			respondError(c, err, logrus.Fields{"user_id": id})
			return
		}
		// Log password change
		logrus.WithFields(logrus.Fields{
			"user_id":   id,                              // User ID
			"type":      "update_password",               // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Password updated")
		c.Status(http.StatusNoContent)
	}
}

// DeleteUserHandler removes the user in the path together with its assets
func DeleteUserHandler(users *repository.UserDirectory, cache *utils.AssetCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := users.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, logrus.Fields{"user_id": id})
			return
		}
		invalidateAssets(c, cache, id)
		// Log user deletion
		logrus.WithFields(logrus.Fields{
			"user_id":   id,                              // User ID
			"type":      "delete_user",                   // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User deleted")
		c.Status(http.StatusNoContent)
	}
}
