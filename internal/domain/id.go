package domain

import (
	"github.com/google/uuid" // UUID generation and parsing
)

// NewID returns a fresh record identifier
func NewID() string {
	return uuid.NewString()
}

// ParseID normalises a record identifier, reporting false when it is not a valid UUID
func ParseID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
