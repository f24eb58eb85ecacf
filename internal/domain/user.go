package domain

import "gorm.io/gorm" // GORM hooks

// User Model
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`        // Primary key (UUID)
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"` // Unique username
	Email    string `gorm:"size:320;uniqueIndex;not null" json:"email"`   // Unique email
	Password string `gorm:"size:255;not null" json:"-"`                   // Hashed password, never serialized
}

// BeforeCreate assigns an identifier to new users
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

// NewUser is the registration payload; it has no identifier
type NewUser struct {
	Username string `json:"username" binding:"required,max=64"` // Username must be provided
	Email    string `json:"email" binding:"required,email"`     // Email must be valid
	Password string `json:"password" binding:"required"`        // Password must be provided
}
