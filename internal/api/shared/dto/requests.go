package dto

import (
	"fmt"

	"github.com/eva-gallery/eva-nft/internal/domain"
)

const (
	MAX_ITEMS_PER_REQUEST = 500
)

// IngestNFTsRequest carries the NFT indexer feed of a wallet
type IngestNFTsRequest struct {
	NFTs []domain.ExternalNFT `json:"nfts" binding:"required"`
}

// Validate validates the request
func (r *IngestNFTsRequest) Validate() error {
	if len(r.NFTs) > MAX_ITEMS_PER_REQUEST {
		return fmt.Errorf("at most %d NFTs are allowed per request", MAX_ITEMS_PER_REQUEST)
	}
	return nil
}

// IngestCollectionsRequest carries the collection indexer feed of a wallet
type IngestCollectionsRequest struct {
	Collections []domain.ExternalCollection `json:"collections" binding:"required"`
}

// Validate validates the request
func (r *IngestCollectionsRequest) Validate() error {
	if len(r.Collections) > MAX_ITEMS_PER_REQUEST {
		return fmt.Errorf("at most %d collections are allowed per request", MAX_ITEMS_PER_REQUEST)
	}
	return nil
}

// UpdateNFTMetadataRequest overwrites the metadata of an NFT. The external ID is kept.
type UpdateNFTMetadataRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ChangeNFTOwnerRequest moves an NFT to another tracked wallet
type ChangeNFTOwnerRequest struct {
	Address string `json:"address" binding:"required"`
}
