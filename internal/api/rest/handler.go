package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eva-gallery/eva-nft/internal/api/shared/dto"
	"github.com/eva-gallery/eva-nft/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// IngestNFTs merges the NFT feed of a wallet into the store
	// POST /api/v1/users/:user_id/wallets/:address/nfts
	IngestNFTs(c *gin.Context)

	// IngestCollections merges the collection feed of a wallet into the store
	// POST /api/v1/users/:user_id/wallets/:address/collections
	IngestCollections(c *gin.Context)

	// AssignWallet links a tracked wallet to a user
	// POST /api/v1/users/:user_id/wallets/:address
	AssignWallet(c *gin.Context)

	// GetUserWallets lists the wallets linked to a user
	// GET /api/v1/users/:user_id/wallets
	GetUserWallets(c *gin.Context)

	// GetWallet retrieves a wallet with its NFTs and collections
	// GET /api/v1/wallets/:address
	GetWallet(c *gin.Context)

	// GetWalletUser retrieves the user that owns a wallet
	// GET /api/v1/wallets/:address/user
	GetWalletUser(c *gin.Context)

	// GetNFT retrieves an NFT by ID
	// GET /api/v1/nfts/:id
	GetNFT(c *gin.Context)

	// UpdateNFTMetadata overwrites the metadata of an NFT
	// PUT /api/v1/nfts/:id/metadata
	UpdateNFTMetadata(c *gin.Context)

	// ChangeNFTOwner moves an NFT to another tracked wallet
	// PUT /api/v1/nfts/:id/owner
	ChangeNFTOwner(c *gin.Context)

	// RemoveNFT deletes an NFT
	// DELETE /api/v1/nfts/:id
	RemoveNFT(c *gin.Context)

	// GetCollection retrieves a collection by ID
	// GET /api/v1/collections/:id
	GetCollection(c *gin.Context)

	// IsArtworkMinted reports whether an artwork has been minted
	// GET /api/v1/artworks/:artwork_id/minted
	IsArtworkMinted(c *gin.Context)

	// CreateTrialMint mints the user's complimentary NFT from one of their artworks
	// POST /api/v1/users/:user_id/artworks/:artwork_id/trial-mint
	CreateTrialMint(c *gin.Context)

	// PayTrialMint marks the user's trial mint as paid
	// POST /api/v1/users/:user_id/trial-mint/pay
	PayTrialMint(c *gin.Context)

	// GetTrialMint retrieves the trial-mint state of a user
	// GET /api/v1/users/:user_id/trial-mint
	GetTrialMint(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) IngestNFTs(c *gin.Context) {
	var req dto.IngestNFTsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.IngestNFTs(c.Request.Context(), c.Param("user_id"), c.Param("address"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) IngestCollections(c *gin.Context) {
	var req dto.IngestCollectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.IngestCollections(c.Request.Context(), c.Param("user_id"), c.Param("address"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) AssignWallet(c *gin.Context) {
	resp, err := h.executor.AssignWallet(c.Request.Context(), c.Param("user_id"), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetUserWallets(c *gin.Context) {
	resp, err := h.executor.GetUserWallets(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetWallet(c *gin.Context) {
	resp, err := h.executor.GetWallet(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetWalletUser(c *gin.Context) {
	resp, err := h.executor.GetWalletUser(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetNFT(c *gin.Context) {
	resp, err := h.executor.GetNFT(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateNFTMetadata(c *gin.Context) {
	var req dto.UpdateNFTMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.UpdateNFTMetadata(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ChangeNFTOwner(c *gin.Context) {
	var req dto.ChangeNFTOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ChangeNFTOwner(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) RemoveNFT(c *gin.Context) {
	if err := h.executor.RemoveNFT(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) GetCollection(c *gin.Context) {
	resp, err := h.executor.GetCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) IsArtworkMinted(c *gin.Context) {
	resp, err := h.executor.IsArtworkMinted(c.Request.Context(), c.Param("artwork_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateTrialMint(c *gin.Context) {
	userID := c.Param("user_id")
	artworkID := c.Param("artwork_id")
	if userID == "" || artworkID == "" {
		respondBadRequest(c, "User ID and artwork ID are required")
		return
	}

	resp, err := h.executor.CreateTrialMint(c.Request.Context(), userID, artworkID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) PayTrialMint(c *gin.Context) {
	resp, err := h.executor.PayTrialMint(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTrialMint(c *gin.Context) {
	resp, err := h.executor.GetTrialMint(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "eva-nft",
	})
}
