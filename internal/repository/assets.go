package repository

import (
	"context" // Request-scoped store calls
	"errors"  // Error inspection

	"asset_map/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Lookup fields accepted by AssetLedger.FindByField
const (
	AssetFieldID       = "id"
	AssetFieldMnemonic = "mnemonic"
)

// AssetLedger stores asset records. Every operation is scoped to the owning user.
type AssetLedger struct {
	db *gorm.DB
}

// NewAssetLedger returns an AssetLedger backed by db
func NewAssetLedger(db *gorm.DB) *AssetLedger {
	return &AssetLedger{db: db}
}

// ListForUser returns the owner's assets ordered by mnemonic
func (r *AssetLedger) ListForUser(ctx context.Context, ownerID string) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("mnemonic").Find(&assets).Error; err != nil {
		return nil, storeErr(err)
	}
	return assets, nil
}

// FindByField returns the owner's asset whose field equals value, or nil when none matches
func (r *AssetLedger) FindByField(ctx context.Context, field, value, ownerID string) (*domain.Asset, error) {
	switch field {
	case AssetFieldID:
		id, ok := domain.ParseID(value)
		if !ok {
			return nil, nil
		}
		value = id
	case AssetFieldMnemonic:
	default:
		return nil, domain.ErrUnknownField
	}
	var asset domain.Asset
	err := r.db.WithContext(ctx).Where(map[string]any{field: value, "user_id": ownerID}).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &asset, nil
}

// Create stores a new asset for the owner; the mnemonic must be unused among the owner's assets
func (r *AssetLedger) Create(ctx context.Context, in domain.NewAsset, ownerID string) (*domain.Asset, error) {
	existing, err := r.FindByField(ctx, AssetFieldMnemonic, in.Mnemonic, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrMnemonicTaken
	}
	asset := domain.Asset{UserID: ownerID, Mnemonic: in.Mnemonic, Price: in.Price, Shares: in.Shares}
	if err := r.db.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, insertErr(err, domain.ErrMnemonicTaken)
	}
	return &asset, nil
}

// Update replaces mnemonic, price and shares of one of the owner's assets.
// The id and owner of the stored record never change.
func (r *AssetLedger) Update(ctx context.Context, in domain.Asset, ownerID string) (*domain.Asset, error) {
	id, ok := domain.ParseID(in.ID)
	if !ok {
		return nil, domain.ErrInvalidID
	}
	current, err := r.FindByField(ctx, AssetFieldID, id, ownerID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrAssetNotFound
	}
	if in.Mnemonic != current.Mnemonic {
		clash, err := r.FindByField(ctx, AssetFieldMnemonic, in.Mnemonic, ownerID)
		if err != nil {
			return nil, err
		}
		if clash != nil {
			return nil, domain.ErrMnemonicTaken
		}
	}
	res := r.db.WithContext(ctx).Model(&domain.Asset{}).Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{"mnemonic": in.Mnemonic, "price": in.Price, "shares": in.Shares})
	if res.Error != nil {
		return nil, insertErr(res.Error, domain.ErrMnemonicTaken)
	}
	current.Mnemonic = in.Mnemonic
	current.Price = in.Price
	current.Shares = in.Shares
	return current, nil
}

// Delete removes one of the owner's assets
func (r *AssetLedger) Delete(ctx context.Context, id, ownerID string) error {
	id, ok := domain.ParseID(id)
	if !ok {
		return domain.ErrInvalidID
	}
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Asset{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}
