package domain

import "gorm.io/gorm" // GORM hooks

// Asset Model
type Asset struct {
	ID       string  `gorm:"primaryKey;type:varchar(36)" json:"id"`                                          // Primary key (UUID)
	UserID   string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_assets_owner_mnemonic" json:"user_id"` // Owning user
	Mnemonic string  `gorm:"size:32;not null;uniqueIndex:idx_assets_owner_mnemonic" json:"mnemonic"`         // Ticker, unique per owner
	Price    float64 `gorm:"not null" json:"price"`                                                          // Unit price
	Shares   int64   `gorm:"not null" json:"shares"`                                                         // Number of shares held
}

// BeforeCreate assigns an identifier to new assets
func (a *Asset) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// NewAsset is the creation payload; it has neither identifier nor owner
type NewAsset struct {
	Mnemonic string  `json:"mnemonic" binding:"required,max=32"` // Mnemonic must be provided
	Price    float64 `json:"price" binding:"required,gt=0"`      // Price must be positive
	Shares   int64   `json:"shares" binding:"required,gt=0"`     // Shares must be positive
}
