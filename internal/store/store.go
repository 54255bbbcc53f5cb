package store

import (
	"context"

	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// Store defines the interface for database operations on the user, wallet,
// artwork, collection and NFT graph.
//
// Lookups return (nil, nil) when the entity does not exist. Writes that
// reference a missing entity fail with domain.ErrNotFound; writes that would
// break a uniqueness invariant fail with domain.ErrConstraintViolation.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Users
	// =============================================================================

	// CreateUser creates a new user in the eligible trial-mint state
	CreateUser(ctx context.Context, user *schema.User) error
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID string) (*schema.User, error)
	// GetUserWallets retrieves the wallets linked to a user
	GetUserWallets(ctx context.Context, userID string) ([]schema.Wallet, error)
	// GetUserByWallet retrieves the user that owns a wallet address
	GetUserByWallet(ctx context.Context, address string) (*schema.User, error)

	// =============================================================================
	// Wallets
	// =============================================================================

	// GetOrCreateWallet returns the wallet for address, creating it (owned by
	// ownerUserID when given) if it does not exist. The second return value
	// reports whether this call created the wallet.
	GetOrCreateWallet(ctx context.Context, address string, ownerUserID *string) (*schema.Wallet, bool, error)
	// GetWalletByAddress retrieves a wallet with its NFTs and collections
	GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error)
	// AssignWallet links an existing wallet to a user
	AssignWallet(ctx context.Context, address string, userID string) (*schema.Wallet, error)

	// =============================================================================
	// Collections
	// =============================================================================

	// FindCollectionByExternalID retrieves a collection by its chain-native ID
	FindCollectionByExternalID(ctx context.Context, externalID string) (*schema.Collection, error)
	// InsertCollection stores a new collection
	InsertCollection(ctx context.Context, collection *schema.Collection) error
	// ListCollectionsForWallet lists a wallet's collections in creation order
	ListCollectionsForWallet(ctx context.Context, walletID string) ([]schema.Collection, error)
	// GetCollection retrieves a collection by ID
	GetCollection(ctx context.Context, collectionID string) (*schema.Collection, error)

	// =============================================================================
	// NFTs
	// =============================================================================

	// FindNFTByExternalID retrieves an NFT by its chain-native ID
	FindNFTByExternalID(ctx context.Context, externalID string) (*schema.NFT, error)
	// InsertNFT stores a new NFT
	InsertNFT(ctx context.Context, nft *schema.NFT) error
	// GetNFT retrieves an NFT by ID
	GetNFT(ctx context.Context, nftID string) (*schema.NFT, error)
	// ListWalletNFTs lists the NFTs held by a wallet address
	ListWalletNFTs(ctx context.Context, address string) ([]schema.NFT, error)
	// UpdateNFTMetadata overwrites the metadata of an NFT. data.ExternalID must
	// equal the stored one; a different value fails with ErrConstraintViolation.
	UpdateNFTMetadata(ctx context.Context, nftID string, data domain.NFTData) (*schema.NFT, error)
	// RemoveNFT deletes an NFT by ID
	RemoveNFT(ctx context.Context, nftID string) error
	// ChangeNFTOwner moves an NFT to another tracked wallet
	ChangeNFTOwner(ctx context.Context, nftID string, address string) error

	// =============================================================================
	// Artworks
	// =============================================================================

	// CreateArtist creates an artist profile
	CreateArtist(ctx context.Context, artist *schema.Artist) error
	// CreateArtwork creates an artwork
	CreateArtwork(ctx context.Context, artwork *schema.Artwork) error
	// SaveArtworkImage creates or replaces the image of an artwork
	SaveArtworkImage(ctx context.Context, image *schema.ArtworkImage) error
	// GetArtworkForUser retrieves an artwork only if its artist belongs to userID
	GetArtworkForUser(ctx context.Context, userID string, artworkID string) (*schema.Artwork, error)
	// GetArtworkImage retrieves the image of an artwork owned by userID
	GetArtworkImage(ctx context.Context, userID string, artworkID string) (*schema.ArtworkImage, error)
	// IsArtworkNFT reports whether the artwork has been minted
	IsArtworkNFT(ctx context.Context, artworkID string) (bool, error)
	// SetArtworkNFT links an artwork to the NFT minted from it
	SetArtworkNFT(ctx context.Context, artworkID string, nftID string) error

	// =============================================================================
	// Trial mint
	// =============================================================================

	// SetTrialMint records nft as the user's trial mint. Fails with
	// domain.ErrAlreadyClaimed unless the user is still eligible.
	SetTrialMint(ctx context.Context, userID string, nft *schema.NFT) error
	// PayTrialMint marks a claimed trial mint as paid
	PayTrialMint(ctx context.Context, userID string) error
	// GetTrialMinted retrieves the user's trial-minted NFT
	GetTrialMinted(ctx context.Context, userID string) (*schema.NFT, error)
}
