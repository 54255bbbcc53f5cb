package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/logger"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// Config holds the store configuration
type Config struct {
	// SubscanURL is the block explorer base used to derive wallet check URLs
	SubscanURL string
}

type pgStore struct {
	db     *gorm.DB
	config Config
}

// NewPGStore creates a new gorm-backed store instance.
// The db handle must be opened with GormConfig so duplicate keys are translated.
func NewPGStore(db *gorm.DB, config Config) Store {
	return &pgStore{db: db, config: config}
}

// GormConfig returns the gorm configuration the store expects
func GormConfig(debug bool) *gorm.Config {
	level := gormlogger.Warn
	if !debug {
		level = gormlogger.Error
	}
	return &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(level),
	}
}

// Migrate creates or updates the tables managed by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// walletCheckURL derives the explorer link of a wallet address
func (s *pgStore) walletCheckURL(address string) string {
	return strings.TrimRight(s.config.SubscanURL, "/") + "/account/" + address
}

// exists reports whether a row with the given primary key exists
func (s *pgStore) exists(ctx context.Context, model interface{}, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// =============================================================================
// Users
// =============================================================================

// CreateUser creates a new user in the eligible trial-mint state
func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) error {
	if user.TrialMintState != "" && !user.TrialMintState.Valid() {
		return fmt.Errorf("invalid trial mint state %q", user.TrialMintState)
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %s: %w", user.ID, domain.ErrConstraintViolation)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (s *pgStore) GetUser(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserWallets retrieves the wallets linked to a user
func (s *pgStore) GetUserWallets(ctx context.Context, userID string) ([]schema.Wallet, error) {
	var wallets []schema.Wallet
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user wallets: %w", err)
	}
	return wallets, nil
}

// GetUserByWallet retrieves the user that owns a wallet address
func (s *pgStore) GetUserByWallet(ctx context.Context, address string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).
		Where("id = (?)", s.db.Model(&schema.Wallet{}).Select("user_id").Where("address = ?", address)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return &user, nil
}

// =============================================================================
// Wallets
// =============================================================================

// GetOrCreateWallet returns the wallet for address, creating it if needed.
// The insert relies on the unique index on address, so concurrent calls
// converge on a single row.
func (s *pgStore) GetOrCreateWallet(ctx context.Context, address string, ownerUserID *string) (*schema.Wallet, bool, error) {
	if address == "" {
		return nil, false, fmt.Errorf("wallet address is required")
	}

	if ownerUserID != nil {
		ok, err := s.exists(ctx, &schema.User{}, *ownerUserID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to check wallet owner: %w", err)
		}
		if !ok {
			return nil, false, fmt.Errorf("user %s: %w", *ownerUserID, domain.ErrNotFound)
		}
	}

	wallet := schema.Wallet{
		Address:        address,
		OnlineCheckURL: s.walletCheckURL(address),
		UserID:         ownerUserID,
	}

	// Use ON CONFLICT DO NOTHING to handle concurrent inserts
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(&wallet)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create wallet: %w", result.Error)
	}

	if result.RowsAffected == 1 {
		logger.DebugCtx(ctx, "Created wallet", zap.String("address", address), zap.String("wallet_id", wallet.ID))
		return &wallet, true, nil
	}

	// The wallet already existed (or a concurrent call created it first)
	var existing schema.Wallet
	if err := s.db.WithContext(ctx).Where("address = ?", address).First(&existing).Error; err != nil {
		return nil, false, fmt.Errorf("failed to get existing wallet: %w", err)
	}

	return &existing, false, nil
}

// GetWalletByAddress retrieves a wallet with its NFTs and collections
func (s *pgStore) GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).
		Preload("NFTs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("NFTs.Artwork").
		Preload("Collections", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("address = ?", address).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// AssignWallet links an existing wallet to a user
func (s *pgStore) AssignWallet(ctx context.Context, address string, userID string) (*schema.Wallet, error) {
	ok, err := s.exists(ctx, &schema.User{}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("address = ?", address).
		UpdateColumn("user_id", userID)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to assign wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("wallet %s: %w", address, domain.ErrNotFound)
	}

	var wallet schema.Wallet
	if err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to get assigned wallet: %w", err)
	}
	return &wallet, nil
}

// =============================================================================
// Collections
// =============================================================================

// FindCollectionByExternalID retrieves a collection by its chain-native ID
func (s *pgStore) FindCollectionByExternalID(ctx context.Context, externalID string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// InsertCollection stores a new collection.
// The unique index on external_id is the final authority on duplicates.
func (s *pgStore) InsertCollection(ctx context.Context, collection *schema.Collection) error {
	if collection.Metadata.Data().ExternalID == "" {
		return fmt.Errorf("collection external ID is required")
	}

	ok, err := s.exists(ctx, &schema.Wallet{}, collection.WalletID)
	if err != nil {
		return fmt.Errorf("failed to check wallet: %w", err)
	}
	if !ok {
		return fmt.Errorf("wallet %s: %w", collection.WalletID, domain.ErrNotFound)
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(collection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("collection %s: %w", collection.ExternalID, domain.ErrConstraintViolation)
		}
		return fmt.Errorf("failed to create collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("collection %s: %w", collection.ExternalID, domain.ErrConstraintViolation)
	}

	return nil
}

// ListCollectionsForWallet lists a wallet's collections in creation order
func (s *pgStore) ListCollectionsForWallet(ctx context.Context, walletID string) ([]schema.Collection, error) {
	var collections []schema.Collection
	err := s.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at ASC, id ASC").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet collections: %w", err)
	}
	return collections, nil
}

// GetCollection retrieves a collection by ID
func (s *pgStore) GetCollection(ctx context.Context, collectionID string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("id = ?", collectionID).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// =============================================================================
// NFTs
// =============================================================================

// FindNFTByExternalID retrieves an NFT by its chain-native ID
func (s *pgStore) FindNFTByExternalID(ctx context.Context, externalID string) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get NFT: %w", err)
	}
	return &nft, nil
}

// InsertNFT stores a new NFT.
// The unique index on external_id is the final authority on duplicates.
func (s *pgStore) InsertNFT(ctx context.Context, nft *schema.NFT) error {
	if nft.Metadata.Data().ExternalID == "" {
		return fmt.Errorf("NFT external ID is required")
	}

	ok, err := s.exists(ctx, &schema.Wallet{}, nft.WalletID)
	if err != nil {
		return fmt.Errorf("failed to check wallet: %w", err)
	}
	if !ok {
		return fmt.Errorf("wallet %s: %w", nft.WalletID, domain.ErrNotFound)
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(nft)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("NFT %s: %w", nft.ExternalID, domain.ErrConstraintViolation)
		}
		return fmt.Errorf("failed to create NFT: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("NFT %s: %w", nft.ExternalID, domain.ErrConstraintViolation)
	}

	return nil
}

// GetNFT retrieves an NFT by ID
func (s *pgStore) GetNFT(ctx context.Context, nftID string) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.db.WithContext(ctx).Where("id = ?", nftID).First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get NFT: %w", err)
	}
	return &nft, nil
}

// ListWalletNFTs lists the NFTs held by a wallet address
func (s *pgStore) ListWalletNFTs(ctx context.Context, address string) ([]schema.NFT, error) {
	var nfts []schema.NFT
	err := s.db.WithContext(ctx).
		Where("wallet_id = (?)", s.db.Model(&schema.Wallet{}).Select("id").Where("address = ?", address)).
		Order("created_at ASC, id ASC").
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet NFTs: %w", err)
	}
	return nfts, nil
}

// UpdateNFTMetadata overwrites the metadata of an NFT.
// The external ID is immutable: it decides the NFT's collection, so a change is rejected.
func (s *pgStore) UpdateNFTMetadata(ctx context.Context, nftID string, data domain.NFTData) (*schema.NFT, error) {
	if data.ExternalID == "" {
		return nil, fmt.Errorf("NFT external ID is required")
	}

	result := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("id = ? AND external_id = ?", nftID, data.ExternalID).
		UpdateColumn("metadata", datatypes.NewJSONType(data))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update NFT metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		found, err := s.exists(ctx, &schema.NFT{}, nftID)
		if err != nil {
			return nil, fmt.Errorf("failed to check NFT: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("NFT %s: %w", nftID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("NFT %s: external ID cannot change to %s: %w", nftID, data.ExternalID, domain.ErrConstraintViolation)
	}

	return s.GetNFT(ctx, nftID)
}

// RemoveNFT deletes an NFT by ID. Rows referencing it are left untouched.
func (s *pgStore) RemoveNFT(ctx context.Context, nftID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", nftID).Delete(&schema.NFT{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove NFT: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("NFT %s: %w", nftID, domain.ErrNotFound)
	}
	return nil
}

// ChangeNFTOwner moves an NFT to another tracked wallet
func (s *pgStore) ChangeNFTOwner(ctx context.Context, nftID string, address string) error {
	var wallet schema.Wallet
	if err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("wallet %s: %w", address, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("id = ?", nftID).
		UpdateColumn("wallet_id", wallet.ID)
	if result.Error != nil {
		return fmt.Errorf("failed to change NFT owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("NFT %s: %w", nftID, domain.ErrNotFound)
	}
	return nil
}

// =============================================================================
// Artworks
// =============================================================================

// CreateArtist creates an artist profile
func (s *pgStore) CreateArtist(ctx context.Context, artist *schema.Artist) error {
	ok, err := s.exists(ctx, &schema.User{}, artist.UserID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !ok {
		return fmt.Errorf("user %s: %w", artist.UserID, domain.ErrNotFound)
	}

	if err := s.db.WithContext(ctx).Create(artist).Error; err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// CreateArtwork creates an artwork
func (s *pgStore) CreateArtwork(ctx context.Context, artwork *schema.Artwork) error {
	ok, err := s.exists(ctx, &schema.Artist{}, artwork.ArtistID)
	if err != nil {
		return fmt.Errorf("failed to check artist: %w", err)
	}
	if !ok {
		return fmt.Errorf("artist %s: %w", artwork.ArtistID, domain.ErrNotFound)
	}

	if err := s.db.WithContext(ctx).Create(artwork).Error; err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}
	return nil
}

// SaveArtworkImage creates or replaces the image of an artwork
func (s *pgStore) SaveArtworkImage(ctx context.Context, image *schema.ArtworkImage) error {
	ok, err := s.exists(ctx, &schema.Artwork{}, image.ArtworkID)
	if err != nil {
		return fmt.Errorf("failed to check artwork: %w", err)
	}
	if !ok {
		return fmt.Errorf("artwork %s: %w", image.ArtworkID, domain.ErrNotFound)
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "artwork_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"image", "mime_type"}),
		}).
		Create(image).Error
	if err != nil {
		return fmt.Errorf("failed to save artwork image: %w", err)
	}
	return nil
}

// ownedArtworkIDs selects the IDs of artworks whose artist belongs to userID
func (s *pgStore) ownedArtworkIDs(userID string) *gorm.DB {
	return s.db.Model(&schema.Artwork{}).
		Select("id").
		Where("artist_id IN (?)", s.db.Model(&schema.Artist{}).Select("id").Where("user_id = ?", userID))
}

// GetArtworkForUser retrieves an artwork only if its artist belongs to userID.
// An artwork owned by someone else is reported as absent.
func (s *pgStore) GetArtworkForUser(ctx context.Context, userID string, artworkID string) (*schema.Artwork, error) {
	var artwork schema.Artwork
	err := s.db.WithContext(ctx).
		Preload("Artist").
		Where("id = ? AND id IN (?)", artworkID, s.ownedArtworkIDs(userID)).
		First(&artwork).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	return &artwork, nil
}

// GetArtworkImage retrieves the image of an artwork owned by userID
func (s *pgStore) GetArtworkImage(ctx context.Context, userID string, artworkID string) (*schema.ArtworkImage, error) {
	var image schema.ArtworkImage
	err := s.db.WithContext(ctx).
		Where("artwork_id = ? AND artwork_id IN (?)", artworkID, s.ownedArtworkIDs(userID)).
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork image: %w", err)
	}
	return &image, nil
}

// IsArtworkNFT reports whether the artwork has been minted
func (s *pgStore) IsArtworkNFT(ctx context.Context, artworkID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Artwork{}).
		Where("id = ? AND nft_id IS NOT NULL", artworkID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check artwork NFT: %w", err)
	}
	return count > 0, nil
}

// SetArtworkNFT links an artwork to the NFT minted from it
func (s *pgStore) SetArtworkNFT(ctx context.Context, artworkID string, nftID string) error {
	ok, err := s.exists(ctx, &schema.NFT{}, nftID)
	if err != nil {
		return fmt.Errorf("failed to check NFT: %w", err)
	}
	if !ok {
		return fmt.Errorf("NFT %s: %w", nftID, domain.ErrNotFound)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Artwork{}).
		Where("id = ?", artworkID).
		UpdateColumn("nft_id", nftID)
	if result.Error != nil {
		return fmt.Errorf("failed to set artwork NFT: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("artwork %s: %w", artworkID, domain.ErrNotFound)
	}
	return nil
}

// =============================================================================
// Trial mint
// =============================================================================

// SetTrialMint records nft as the user's trial mint.
// The update is conditional on the eligible state, which makes it the single
// point where a trial mint is granted: of two racing callers only one matches.
func (s *pgStore) SetTrialMint(ctx context.Context, userID string, nft *schema.NFT) error {
	if nft == nil || nft.ID == "" {
		return fmt.Errorf("trial mint NFT is required")
	}

	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ? AND trial_mint_state = ?", userID, domain.TrialMintEligible).
		UpdateColumns(map[string]interface{}{
			"trial_mint_state":  domain.TrialMintClaimed,
			"trial_mint_nft_id": nft.ID,
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set trial mint: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		ok, err := s.exists(ctx, &schema.User{}, userID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if !ok {
			return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}
		return fmt.Errorf("user %s: %w", userID, domain.ErrAlreadyClaimed)
	}

	return nil
}

// PayTrialMint marks a claimed trial mint as paid. Paying twice is a no-op.
func (s *pgStore) PayTrialMint(ctx context.Context, userID string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	switch user.TrialMintState {
	case domain.TrialMintPaid:
		return nil
	case domain.TrialMintEligible:
		return fmt.Errorf("user %s has no claimed trial mint: %w", userID, domain.ErrConstraintViolation)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ? AND trial_mint_state = ?", userID, domain.TrialMintClaimed).
		UpdateColumns(map[string]interface{}{
			"trial_mint_state": domain.TrialMintPaid,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to pay trial mint: %w", result.Error)
	}

	return nil
}

// GetTrialMinted retrieves the user's trial-minted NFT
func (s *pgStore) GetTrialMinted(ctx context.Context, userID string) (*schema.NFT, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if user.TrialMintNFTID == nil {
		return nil, nil
	}

	return s.GetNFT(ctx, *user.TrialMintNFTID)
}
