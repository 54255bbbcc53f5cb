package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes.
// Authentication is handled in front of this service.
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Indexer feed ingestion and wallet ownership
		v1.POST("/users/:user_id/wallets/:address/nfts", handler.IngestNFTs)
		v1.POST("/users/:user_id/wallets/:address/collections", handler.IngestCollections)
		v1.POST("/users/:user_id/wallets/:address", handler.AssignWallet)
		v1.GET("/users/:user_id/wallets", handler.GetUserWallets)

		// Wallets
		v1.GET("/wallets/:address", handler.GetWallet)
		v1.GET("/wallets/:address/user", handler.GetWalletUser)

		// NFTs and collections
		v1.GET("/nfts/:id", handler.GetNFT)
		v1.PUT("/nfts/:id/metadata", handler.UpdateNFTMetadata)
		v1.PUT("/nfts/:id/owner", handler.ChangeNFTOwner)
		v1.DELETE("/nfts/:id", handler.RemoveNFT)
		v1.GET("/collections/:id", handler.GetCollection)

		// Trial mint
		v1.GET("/artworks/:artwork_id/minted", handler.IsArtworkMinted)
		v1.POST("/users/:user_id/artworks/:artwork_id/trial-mint", handler.CreateTrialMint)
		v1.POST("/users/:user_id/trial-mint/pay", handler.PayTrialMint)
		v1.GET("/users/:user_id/trial-mint", handler.GetTrialMint)
	}
}
