package repository

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping

	"asset_map/internal/domain" // Domain errors

	"gorm.io/gorm" // GORM ORM library
)

// storeErr marks a driver error as a store failure
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStore, err)
}

// insertErr maps a failed insert, turning a unique index violation into the given conflict
func insertErr(err, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return storeErr(err)
}
