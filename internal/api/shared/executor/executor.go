package executor

import (
	"context"

	"github.com/eva-gallery/eva-nft/internal/api/shared/dto"
	apierrors "github.com/eva-gallery/eva-nft/internal/api/shared/errors"
	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/reconcile"
	"github.com/eva-gallery/eva-nft/internal/store"
	"github.com/eva-gallery/eva-nft/internal/trialmint"
)

// Executor is the interface for the API executor.
// Every error it returns is an *apierrors.APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// IngestNFTs merges the NFT feed of a wallet into the store
	IngestNFTs(ctx context.Context, userID string, address string, req *dto.IngestNFTsRequest) (*dto.IngestResponse, error)

	// IngestCollections merges the collection feed of a wallet into the store
	IngestCollections(ctx context.Context, userID string, address string, req *dto.IngestCollectionsRequest) (*dto.IngestResponse, error)

	// AssignWallet links a tracked wallet to a user
	AssignWallet(ctx context.Context, userID string, address string) (*dto.WalletResponse, error)

	// GetUserWallets lists the wallets linked to a user
	GetUserWallets(ctx context.Context, userID string) (*dto.WalletListResponse, error)

	// GetWallet retrieves a wallet with its NFTs and collections
	GetWallet(ctx context.Context, address string) (*dto.WalletResponse, error)

	// GetWalletUser retrieves the user that owns a wallet
	GetWalletUser(ctx context.Context, address string) (*dto.UserResponse, error)

	// GetNFT retrieves an NFT by ID
	GetNFT(ctx context.Context, nftID string) (*dto.NFTResponse, error)

	// GetCollection retrieves a collection by ID
	GetCollection(ctx context.Context, collectionID string) (*dto.CollectionResponse, error)

	// UpdateNFTMetadata overwrites the metadata of an NFT
	UpdateNFTMetadata(ctx context.Context, nftID string, req *dto.UpdateNFTMetadataRequest) (*dto.NFTResponse, error)

	// ChangeNFTOwner moves an NFT to another tracked wallet
	ChangeNFTOwner(ctx context.Context, nftID string, req *dto.ChangeNFTOwnerRequest) (*dto.NFTResponse, error)

	// RemoveNFT deletes an NFT
	RemoveNFT(ctx context.Context, nftID string) error

	// IsArtworkMinted reports whether an artwork has been minted
	IsArtworkMinted(ctx context.Context, artworkID string) (*dto.ArtworkMintedResponse, error)

	// CreateTrialMint runs the trial-mint workflow
	CreateTrialMint(ctx context.Context, userID string, artworkID string) (*dto.TrialMintResponse, error)

	// PayTrialMint marks the user's trial mint as paid
	PayTrialMint(ctx context.Context, userID string) (*dto.TrialMintStateResponse, error)

	// GetTrialMint retrieves the trial-mint state of a user
	GetTrialMint(ctx context.Context, userID string) (*dto.TrialMintStateResponse, error)
}

type executor struct {
	store     store.Store
	engine    reconcile.Engine
	trialMint trialmint.Workflow
}

func NewExecutor(store store.Store, engine reconcile.Engine, trialMint trialmint.Workflow) Executor {
	return &executor{store: store, engine: engine, trialMint: trialMint}
}

func (e *executor) IngestNFTs(ctx context.Context, userID string, address string, req *dto.IngestNFTsRequest) (*dto.IngestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	results, err := e.engine.IngestNFTs(ctx, userID, address, req.NFTs)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to ingest NFTs")
	}

	return dto.MapIngestResults(results), nil
}

func (e *executor) IngestCollections(ctx context.Context, userID string, address string, req *dto.IngestCollectionsRequest) (*dto.IngestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	results, err := e.engine.IngestCollections(ctx, userID, address, req.Collections)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to ingest collections")
	}

	return dto.MapIngestResults(results), nil
}

func (e *executor) AssignWallet(ctx context.Context, userID string, address string) (*dto.WalletResponse, error) {
	wallet, err := e.store.AssignWallet(ctx, address, userID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to assign wallet")
	}
	return dto.MapWalletToDTO(wallet), nil
}

func (e *executor) GetUserWallets(ctx context.Context, userID string) (*dto.WalletListResponse, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get user")
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found")
	}

	wallets, err := e.store.GetUserWallets(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get user wallets")
	}

	resp := &dto.WalletListResponse{Wallets: make([]dto.WalletResponse, 0, len(wallets))}
	for i := range wallets {
		resp.Wallets = append(resp.Wallets, *dto.MapWalletToDTO(&wallets[i]))
	}
	return resp, nil
}

func (e *executor) GetWallet(ctx context.Context, address string) (*dto.WalletResponse, error) {
	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get wallet")
	}
	if wallet == nil {
		return nil, apierrors.NewNotFoundError("Wallet not found")
	}
	return dto.MapWalletToDTO(wallet), nil
}

func (e *executor) GetWalletUser(ctx context.Context, address string) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByWallet(ctx, address)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get wallet user")
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("Wallet has no user")
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) GetNFT(ctx context.Context, nftID string) (*dto.NFTResponse, error) {
	nft, err := e.store.GetNFT(ctx, nftID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get NFT")
	}
	if nft == nil {
		return nil, apierrors.NewNotFoundError("NFT not found")
	}
	return dto.MapNFTToDTO(nft), nil
}

func (e *executor) GetCollection(ctx context.Context, collectionID string) (*dto.CollectionResponse, error) {
	collection, err := e.store.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get collection")
	}
	if collection == nil {
		return nil, apierrors.NewNotFoundError("Collection not found")
	}
	return dto.MapCollectionToDTO(collection), nil
}

func (e *executor) UpdateNFTMetadata(ctx context.Context, nftID string, req *dto.UpdateNFTMetadataRequest) (*dto.NFTResponse, error) {
	current, err := e.store.GetNFT(ctx, nftID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get NFT")
	}
	if current == nil {
		return nil, apierrors.NewNotFoundError("NFT not found")
	}

	nft, err := e.store.UpdateNFTMetadata(ctx, nftID, domain.NFTData{
		ExternalID:  current.ExternalID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to update NFT metadata")
	}
	return dto.MapNFTToDTO(nft), nil
}

func (e *executor) ChangeNFTOwner(ctx context.Context, nftID string, req *dto.ChangeNFTOwnerRequest) (*dto.NFTResponse, error) {
	if err := e.store.ChangeNFTOwner(ctx, nftID, req.Address); err != nil {
		return nil, apierrors.FromDomain(err, "Failed to change NFT owner")
	}
	return e.GetNFT(ctx, nftID)
}

func (e *executor) RemoveNFT(ctx context.Context, nftID string) error {
	if err := e.store.RemoveNFT(ctx, nftID); err != nil {
		return apierrors.FromDomain(err, "Failed to remove NFT")
	}
	return nil
}

func (e *executor) IsArtworkMinted(ctx context.Context, artworkID string) (*dto.ArtworkMintedResponse, error) {
	minted, err := e.store.IsArtworkNFT(ctx, artworkID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to check artwork")
	}
	return &dto.ArtworkMintedResponse{ArtworkID: artworkID, Minted: minted}, nil
}

func (e *executor) CreateTrialMint(ctx context.Context, userID string, artworkID string) (*dto.TrialMintResponse, error) {
	status, err := e.trialMint.Create(ctx, userID, artworkID)
	if err != nil && status == "" {
		return nil, apierrors.FromDomain(err, "Failed to create trial mint")
	}

	// A failed mint is a normal outcome; the cause is already logged
	return &dto.TrialMintResponse{Status: status}, nil
}

func (e *executor) PayTrialMint(ctx context.Context, userID string) (*dto.TrialMintStateResponse, error) {
	if err := e.store.PayTrialMint(ctx, userID); err != nil {
		return nil, apierrors.FromDomain(err, "Failed to pay trial mint")
	}
	return e.GetTrialMint(ctx, userID)
}

func (e *executor) GetTrialMint(ctx context.Context, userID string) (*dto.TrialMintStateResponse, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get user")
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found")
	}

	resp := &dto.TrialMintStateResponse{State: user.TrialMintState}

	nft, err := e.store.GetTrialMinted(ctx, userID)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to get trial-minted NFT")
	}
	if nft != nil {
		resp.NFT = dto.MapNFTToDTO(nft)
	}

	return resp, nil
}
