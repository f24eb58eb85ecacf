package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps for logs

	"asset_map/internal/domain"     // Importing domain models
	"asset_map/internal/middleware" // Authenticated user
	"asset_map/internal/repository" // Asset ledger
	"asset_map/internal/utils"      // Asset cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UpdateAssetRequest replaces an asset's mnemonic, price and shares. Owner fields in the body are ignored.
type UpdateAssetRequest struct {
	ID       string  `json:"id" binding:"required"`              // Asset ID
	Mnemonic string  `json:"mnemonic" binding:"required,max=32"` // Mnemonic
	Price    float64 `json:"price" binding:"required,gt=0"`      // Price must be positive
	Shares   int64   `json:"shares" binding:"required,gt=0"`     // Shares must be positive
}

// ListAssetsHandler returns the authenticated user's assets
func ListAssetsHandler(ledger *repository.AssetLedger, cache *utils.AssetCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireUser(c)
		if !ok {
			return
		}
		assets, err := loadAssets(c, ledger, cache, user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, assets)
	}
}

// PortfolioHandler returns the percentage each of the user's assets holds in their total value
func PortfolioHandler(ledger *repository.AssetLedger, cache *utils.AssetCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireUser(c)
		if !ok {
			return
		}
		assets, err := loadAssets(c, ledger, cache, user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, domain.ComputePortfolio(assets))
	}
}

// CreateAssetHandler stores a new asset for the authenticated user
func CreateAssetHandler(ledger *repository.AssetLedger, cache *utils.AssetCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireUser(c)
		if !ok {
			return
		}
		var req domain.NewAsset // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		asset, err := ledger.Create(c.Request.Context(), req, user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID, "mnemonic": req.Mnemonic})
			return
		}
		invalidateAssets(c, cache, user.ID)
		// Log asset creation
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // Owner ID
			"asset_id":  asset.ID,                        // Asset ID
			"mnemonic":  asset.Mnemonic,                  // Mnemonic
			"type":      "create_asset",                  // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Asset created")
		c.JSON(http.StatusCreated, asset)
	}
}

// UpdateAssetHandler replaces one of the authenticated user's assets
func UpdateAssetHandler(ledger *repository.AssetLedger, cache *utils.AssetCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireUser(c)
		if !ok {
			return
		}
		var req UpdateAssetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		in := domain.Asset{ID: req.ID, Mnemonic: req.Mnemonic, Price: req.Price, Shares: req.Shares}
		asset, err := ledger.Update(c.Request.Context(), in, user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID, "asset_id": req.ID})
			return
		}
		invalidateAssets(c, cache, user.ID)
		// Log asset update
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // Owner ID
			"asset_id":  asset.ID,                        // Asset ID
			"type":      "update_asset",                  // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Asset updated")
		c.JSON(http.StatusOK, asset)
	}
}

// DeleteAssetHandler removes one of the authenticated user's assets
func DeleteAssetHandler(ledger *repository.AssetLedger, cache *utils.AssetCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireUser(c)
		if !ok {
			return
		}
		id := c.Param("id")
		if err := ledger.Delete(c.Request.Context(), id, user.ID); err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID, "asset_id": id})
			return
		}
		invalidateAssets(c, cache, user.ID)
		// Log asset deletion
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // Owner ID
			"asset_id":  id,                              // Asset ID
			"type":      "delete_asset",                  // Operation type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Asset deleted")
		c.Status(http.StatusNoContent)
	}
}

// requireUser returns the user set by the auth middleware, answering 401 when it is missing
func requireUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
	}
	return user, ok
}

// loadAssets reads the user's assets through the cache
func loadAssets(c *gin.Context, ledger *repository.AssetLedger, cache *utils.AssetCache, userID string) ([]domain.Asset, error) {
	ctx := c.Request.Context()
	cached, gen, found, cacheErr := cache.Get(ctx, userID) // Try to get from cache
	if cacheErr != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": cacheErr.Error()}).Warn("Asset cache read failed")
	}
	if found {
		return cached, nil
	}
	// If not in cache, fetch from DB
	assets, err := ledger.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cacheErr != nil {
		return assets, nil // Generation unknown, nothing safe to fill
	}
	if err := cache.Set(ctx, userID, gen, assets); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Asset cache write failed")
	}
	return assets, nil
}

// invalidateAssets drops the user's cached asset list after a write
func invalidateAssets(c *gin.Context, cache *utils.AssetCache, userID string) {
	if err := cache.Invalidate(c.Request.Context(), userID); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Asset cache invalidation failed")
	}
}
