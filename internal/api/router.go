package api

import (
	"net/http" // HTTP status codes

	"asset_map/internal/middleware" // Authorization gate
	"asset_map/internal/repository" // Stores
	"asset_map/internal/utils"      // Tokens and cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps are the collaborators the HTTP handlers are built from
type Deps struct {
	Users  *repository.UserDirectory // User directory
	Assets *repository.AssetLedger   // Asset ledger
	Tokens *utils.TokenIssuer        // Access token issuer/verifier
	Cache  *utils.AssetCache         // Asset list cache, nil when disabled
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	auth := middleware.JWTAuthMiddleware(d.Tokens, d.Users) // Bearer token gate

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hi AssetMap 2024!"})
	})

	// User routes
	userGroup := r.Group("/user")
	userGroup.POST("/", RegisterHandler(d.Users))                          // Registration endpoint
	userGroup.POST("/login", LoginHandler(d.Users, d.Tokens))              // Login endpoint
	userGroup.GET("/", auth, ListUsersHandler(d.Users))                    // List users endpoint
	userGroup.GET("/:id", auth, GetUserHandler(d.Users))                   // Get user endpoint
	userGroup.PUT("/", auth, UpdateUserHandler(d.Users))                   // Update user endpoint
	userGroup.PATCH("/password/:id", auth, UpdatePasswordHandler(d.Users)) // Update password endpoint
	userGroup.DELETE("/:id", auth, DeleteUserHandler(d.Users, d.Cache))    // Delete user endpoint

	// Asset routes (protected by JWT)
	assetGroup := r.Group("/asset")
	assetGroup.Use(auth)
	assetGroup.GET("/", ListAssetsHandler(d.Assets, d.Cache))         // List assets endpoint
	assetGroup.GET("/portfolio", PortfolioHandler(d.Assets, d.Cache)) // Portfolio endpoint
	assetGroup.POST("/", CreateAssetHandler(d.Assets, d.Cache))       // Create asset endpoint
	assetGroup.PUT("/", UpdateAssetHandler(d.Assets, d.Cache))        // Update asset endpoint
	assetGroup.DELETE("/:id", DeleteAssetHandler(d.Assets, d.Cache))  // Delete asset endpoint
}
