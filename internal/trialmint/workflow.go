// Package trialmint issues the one complimentary NFT a user may mint from one
// of their artworks.
//
// A request moves through eligible -> requested -> minted, or ends as rejected
// (the eligibility gate failed, nothing was sent) or failed (the minting
// service did not confirm the mint). The gate is re-checked atomically by
// store.SetTrialMint, so a user is granted at most one trial mint even when
// two requests pass the gate together. The losing request leaves its NFT
// stored against the house wallet without an owner.
package trialmint

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/logger"
	"github.com/eva-gallery/eva-nft/internal/minting"
	"github.com/eva-gallery/eva-nft/internal/reconcile"
	"github.com/eva-gallery/eva-nft/internal/store"
	"github.com/eva-gallery/eva-nft/internal/uri"
)

// Config holds the trial-mint workflow configuration
type Config struct {
	// IPFSGateway is the gateway base that ipfs://ipfs/ locators are rewritten to
	IPFSGateway string
	// LookupConcurrency bounds the house wallet lookups running at once across requests
	LookupConcurrency int
}

// Workflow defines the trial-mint workflow
//
//go:generate mockgen -source=workflow.go -destination=../mocks/trialmint_workflow.go -package=mocks -mock_names=Workflow=MockTrialMintWorkflow
type Workflow interface {
	// Create mints a trial NFT from the user's artwork and records it against the user.
	// A non-nil error is returned only together with MintStatusFailed or when
	// loading the user or artwork fails.
	Create(ctx context.Context, userID string, artworkID string) (domain.MintStatus, error)

	// Close stops the lookup worker pool
	Close()
}

type workflow struct {
	store   store.Store
	engine  reconcile.Engine
	minting minting.Client
	config  Config
	pool    pond.ResultPool[string]
}

// NewWorkflow creates a new trial-mint workflow
func NewWorkflow(store store.Store, engine reconcile.Engine, mintingClient minting.Client, config Config) Workflow {
	if config.LookupConcurrency <= 0 {
		config.LookupConcurrency = 8
	}
	if config.IPFSGateway == "" {
		config.IPFSGateway = domain.DEFAULT_IPFS_GATEWAY
	}

	return &workflow{
		store:   store,
		engine:  engine,
		minting: mintingClient,
		config:  config,
		pool:    pond.NewResultPool[string](config.LookupConcurrency),
	}
}

// Close stops the lookup worker pool
func (w *workflow) Close() {
	w.pool.StopAndWait()
}

// Create mints a trial NFT from the user's artwork and records it against the user
func (w *workflow) Create(ctx context.Context, userID string, artworkID string) (domain.MintStatus, error) {
	log := logger.FromContext(ctx).With(zap.String("user_id", userID), zap.String("artwork_id", artworkID))

	user, err := w.store.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	artwork, err := w.store.GetArtworkForUser(ctx, userID, artworkID)
	if err != nil {
		return "", fmt.Errorf("failed to load artwork: %w", err)
	}
	image, err := w.store.GetArtworkImage(ctx, userID, artworkID)
	if err != nil {
		return "", fmt.Errorf("failed to load artwork image: %w", err)
	}

	// Eligibility gate, before any call to the minting service
	if user == nil || artwork == nil || user.TrialMintClaimed() || user.TrialMintNFTID != nil {
		log.Info("Trial mint rejected",
			zap.Bool("user_found", user != nil),
			zap.Bool("artwork_found", artwork != nil))
		return domain.MintStatusMintedAlready, nil
	}
	if image == nil || len(image.Image) == 0 {
		log.Warn("Trial mint failed: artwork has no image")
		return domain.MintStatusFailed, nil
	}

	// Requested
	resp, err := w.minting.Mint(ctx, minting.MintRequest{
		Name:        artwork.Name,
		Description: ComposeDescription(artwork),
		Image:       image.Image,
		MimeType:    image.MimeType,
	})
	if err != nil {
		log.Warn("Trial mint failed: mint request", zap.Error(err))
		return domain.MintStatusFailed, nil
	}
	if !resp.Complete() {
		log.Warn("Trial mint failed: minting service did not confirm the mint")
		return domain.MintStatusFailed, nil
	}

	tokenID := string(*resp.NFTID)
	log = log.With(zap.String("token_id", tokenID))

	// From here on the token exists on chain. Failures are reported without
	// rolling anything back so the token can be recovered from the logs.
	collectionID, houseAddress, err := w.houseWallet(ctx)
	if err != nil {
		log.Error("Minted token could not be recorded: house wallet lookup", zap.Error(err))
		return domain.MintStatusFailed, err
	}

	metadata, err := w.minting.FetchMetadata(ctx, uri.ConvertIPFSLink(string(*resp.MetadataCID), w.config.IPFSGateway))
	if err != nil {
		log.Error("Minted token could not be recorded: metadata fetch", zap.Error(err))
		return domain.MintStatusFailed, err
	}

	data := domain.NFTData{
		ExternalID:  collectionID + domain.EXTERNAL_ID_SEPARATOR + tokenID,
		Name:        artwork.Name,
		Description: metadata.Description,
		Image:       uri.ConvertIPFSLink(metadata.Image, w.config.IPFSGateway),
	}

	nft, err := w.engine.CreateNFT(ctx, data, houseAddress, &artwork.ID)
	if err != nil {
		log.Error("Minted token could not be recorded: create NFT", zap.String("external_id", data.ExternalID), zap.Error(err))
		return domain.MintStatusFailed, err
	}

	if err := w.store.SetTrialMint(ctx, userID, nft); err != nil {
		if errors.Is(err, domain.ErrAlreadyClaimed) {
			// A concurrent request won the claim; this NFT stays with the house wallet
			log.Warn("Trial mint already claimed by a concurrent request, NFT left unassigned",
				zap.String("nft_id", nft.ID),
				zap.String("external_id", data.ExternalID))
			return domain.MintStatusMintedAlready, nil
		}
		log.Error("Minted NFT could not be assigned to the user", zap.String("nft_id", nft.ID), zap.Error(err))
		return domain.MintStatusFailed, err
	}

	if err := w.store.SetArtworkNFT(ctx, artwork.ID, nft.ID); err != nil {
		log.Warn("Failed to link artwork to its NFT", zap.String("nft_id", nft.ID), zap.Error(err))
	}

	log.Info("Trial mint succeeded", zap.String("nft_id", nft.ID), zap.String("external_id", data.ExternalID))
	return domain.MintStatusSuccess, nil
}

// houseWallet looks up the house collection ID and wallet address concurrently
func (w *workflow) houseWallet(ctx context.Context) (string, string, error) {
	collectionTask := w.pool.SubmitErr(func() (string, error) {
		return w.minting.HouseCollectionID(ctx)
	})
	addressTask := w.pool.SubmitErr(func() (string, error) {
		return w.minting.HouseWalletAddress(ctx)
	})

	collectionID, collectionErr := collectionTask.Wait()
	address, addressErr := addressTask.Wait()
	if err := errors.Join(collectionErr, addressErr); err != nil {
		return "", "", err
	}

	return collectionID, address, nil
}
