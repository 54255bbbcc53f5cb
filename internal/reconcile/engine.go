// Package reconcile merges indexer feeds of NFTs and collections into the store.
//
// Ingestion is best-effort: items are processed in input order, already known
// items are skipped, and a failure on one item does not roll back the others.
// Every item gets an IngestResult so callers can audit the batch.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/logger"
	"github.com/eva-gallery/eva-nft/internal/matcher"
	"github.com/eva-gallery/eva-nft/internal/store"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// Config holds the reconciliation engine configuration
type Config struct {
	// KodadotURL is the marketplace base used to derive NFT and collection check URLs
	KodadotURL string
}

// Engine defines the interface for reconciling indexer feeds with the store
//
//go:generate mockgen -source=engine.go -destination=../mocks/reconcile_engine.go -package=mocks -mock_names=Engine=MockReconcileEngine
type Engine interface {
	// IngestNFTs stores the NFTs observed for a wallet and links them to the
	// wallet's known collections. userID may be empty for an unclaimed wallet.
	IngestNFTs(ctx context.Context, userID string, walletAddress string, observed []domain.ExternalNFT) ([]domain.IngestResult, error)

	// IngestCollections stores the collections observed for a wallet
	IngestCollections(ctx context.Context, userID string, walletAddress string, observed []domain.ExternalCollection) ([]domain.IngestResult, error)

	// CreateNFT stores a single NFT for walletAddress through the same path as
	// IngestNFTs. The insert fails with domain.ErrConstraintViolation when the
	// external ID is already stored.
	CreateNFT(ctx context.Context, data domain.NFTData, walletAddress string, artworkID *string) (*schema.NFT, error)
}

type engine struct {
	store  store.Store
	config Config
}

// NewEngine creates a new reconciliation engine
func NewEngine(store store.Store, config Config) Engine {
	return &engine{
		store:  store,
		config: config,
	}
}

// IngestNFTs stores the NFTs observed for a wallet
func (e *engine) IngestNFTs(ctx context.Context, userID string, walletAddress string, observed []domain.ExternalNFT) ([]domain.IngestResult, error) {
	wallet, created, err := e.store.GetOrCreateWallet(ctx, walletAddress, ownerRef(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	// A wallet created by this call cannot own collections yet
	var candidates []schema.Collection
	if !created {
		candidates, err = e.store.ListCollectionsForWallet(ctx, wallet.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list wallet collections: %w", err)
		}
	}

	results := make([]domain.IngestResult, 0, len(observed))
	for _, item := range observed {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := e.ingestNFT(ctx, wallet, candidates, item.Data(), nil)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	logBatch(ctx, "NFT", walletAddress, results)
	return results, nil
}

// IngestCollections stores the collections observed for a wallet
func (e *engine) IngestCollections(ctx context.Context, userID string, walletAddress string, observed []domain.ExternalCollection) ([]domain.IngestResult, error) {
	wallet, _, err := e.store.GetOrCreateWallet(ctx, walletAddress, ownerRef(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	results := make([]domain.IngestResult, 0, len(observed))
	for _, item := range observed {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := e.ingestCollection(ctx, wallet, item.Data())
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	logBatch(ctx, "collection", walletAddress, results)
	return results, nil
}

// CreateNFT stores a single NFT for walletAddress
func (e *engine) CreateNFT(ctx context.Context, data domain.NFTData, walletAddress string, artworkID *string) (*schema.NFT, error) {
	wallet, created, err := e.store.GetOrCreateWallet(ctx, walletAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	var candidates []schema.Collection
	if !created {
		candidates, err = e.store.ListCollectionsForWallet(ctx, wallet.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list wallet collections: %w", err)
		}
	}

	nft := e.newNFT(ctx, wallet, candidates, data, artworkID)
	if err := e.store.InsertNFT(ctx, nft); err != nil {
		return nil, fmt.Errorf("failed to insert NFT %s: %w", data.ExternalID, err)
	}

	return nft, nil
}

// ingestNFT runs the existence check, collection matching and insert for one item.
// Only a missing referenced entity is returned as an error; everything else
// is reported through the result.
func (e *engine) ingestNFT(ctx context.Context, wallet *schema.Wallet, candidates []schema.Collection, data domain.NFTData, artworkID *string) (domain.IngestResult, error) {
	result := domain.IngestResult{ExternalID: data.ExternalID}

	if data.ExternalID == "" {
		result.Outcome = domain.IngestOutcomeFailed
		result.Err = fmt.Errorf("NFT external ID is required")
		return result, nil
	}

	existing, err := e.store.FindNFTByExternalID(ctx, data.ExternalID)
	if err != nil {
		result.Outcome = domain.IngestOutcomeFailed
		result.Err = err
		return result, nil
	}
	if existing != nil {
		logger.InfoCtx(ctx, "NFT already exists in the database", zap.String("external_id", data.ExternalID))
		result.Outcome = domain.IngestOutcomeSkipped
		result.Reason = domain.SkipReasonAlreadyExists
		return result, nil
	}

	nft := e.newNFT(ctx, wallet, candidates, data, artworkID)
	if err := e.store.InsertNFT(ctx, nft); err != nil {
		return insertFailure(ctx, result, err)
	}

	result.Outcome = domain.IngestOutcomeInserted
	return result, nil
}

// ingestCollection runs the existence check and insert for one item
func (e *engine) ingestCollection(ctx context.Context, wallet *schema.Wallet, data domain.NFTData) (domain.IngestResult, error) {
	result := domain.IngestResult{ExternalID: data.ExternalID}

	if data.ExternalID == "" {
		result.Outcome = domain.IngestOutcomeFailed
		result.Err = fmt.Errorf("collection external ID is required")
		return result, nil
	}

	existing, err := e.store.FindCollectionByExternalID(ctx, data.ExternalID)
	if err != nil {
		result.Outcome = domain.IngestOutcomeFailed
		result.Err = err
		return result, nil
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Collection already exists in the database", zap.String("external_id", data.ExternalID))
		result.Outcome = domain.IngestOutcomeSkipped
		result.Reason = domain.SkipReasonAlreadyExists
		return result, nil
	}

	collection := &schema.Collection{
		Metadata:       datatypes.NewJSONType(data),
		OnlineCheckURL: e.checkURL("collection", data.ExternalID),
		WalletID:       wallet.ID,
	}
	if err := e.store.InsertCollection(ctx, collection); err != nil {
		return insertFailure(ctx, result, err)
	}

	result.Outcome = domain.IngestOutcomeInserted
	return result, nil
}

// newNFT builds an NFT record for wallet and links it to the matching collection
func (e *engine) newNFT(ctx context.Context, wallet *schema.Wallet, candidates []schema.Collection, data domain.NFTData, artworkID *string) *schema.NFT {
	nft := &schema.NFT{
		Metadata:       datatypes.NewJSONType(data),
		OnlineCheckURL: e.checkURL("gallery", data.ExternalID),
		WalletID:       wallet.ID,
		ArtworkID:      artworkID,
	}

	if collection := matcher.MatchCollection(data.ExternalID, candidates); collection != nil {
		nft.CollectionID = &collection.ID
	} else {
		logger.DebugCtx(ctx, "NFT doesn't belong to any collection in the database",
			zap.String("external_id", data.ExternalID),
			zap.String("wallet", wallet.Address),
		)
	}

	return nft
}

func (e *engine) checkURL(section string, externalID string) string {
	return strings.TrimRight(e.config.KodadotURL, "/") + "/" + section + "/" + externalID
}

// insertFailure classifies an insert error: a lost race on the unique index is
// a skip, a missing wallet aborts the batch, anything else fails the item.
func insertFailure(ctx context.Context, result domain.IngestResult, err error) (domain.IngestResult, error) {
	switch {
	case errors.Is(err, domain.ErrConstraintViolation):
		logger.InfoCtx(ctx, "Item was inserted concurrently, skipping", zap.String("external_id", result.ExternalID))
		result.Outcome = domain.IngestOutcomeSkipped
		result.Reason = domain.SkipReasonConcurrentInsert
		return result, nil
	case errors.Is(err, domain.ErrNotFound):
		return result, fmt.Errorf("failed to insert %s: %w", result.ExternalID, err)
	default:
		logger.WarnCtx(ctx, "Failed to insert item", zap.String("external_id", result.ExternalID), zap.Error(err))
		result.Outcome = domain.IngestOutcomeFailed
		result.Err = err
		return result, nil
	}
}

func logBatch(ctx context.Context, kind string, walletAddress string, results []domain.IngestResult) {
	var inserted, skipped, failed int
	for _, r := range results {
		switch r.Outcome {
		case domain.IngestOutcomeInserted:
			inserted++
		case domain.IngestOutcomeSkipped:
			skipped++
		case domain.IngestOutcomeFailed:
			failed++
		}
	}

	logger.InfoCtx(ctx, "Reconciled "+kind+" batch",
		zap.String("wallet", walletAddress),
		zap.Int("inserted", inserted),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
	)
}

func ownerRef(userID string) *string {
	if userID == "" {
		return nil
	}
	return &userID
}
