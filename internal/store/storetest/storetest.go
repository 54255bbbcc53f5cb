// Package storetest provides store fixtures for tests of packages built on top of the store.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eva-gallery/eva-nft/internal/store"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// SubscanURL is the wallet check-URL base used by NewSQLiteStore
const SubscanURL = "https://assethub-polkadot.subscan.io"

// NewSQLiteStore returns a store backed by a private, migrated in-memory SQLite database
func NewSQLiteStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", schema.NewID())
	db, err := gorm.Open(sqlite.Open(dsn), store.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, store.Migrate(db))
	return store.NewPGStore(db, store.Config{SubscanURL: SubscanURL})
}

// CreateUser stores a new eligible user
func CreateUser(t *testing.T, s store.Store) *schema.User {
	t.Helper()

	user := &schema.User{}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

// CreateArtwork stores an artist for userID and an artwork with an image
func CreateArtwork(t *testing.T, s store.Store, userID string, artwork *schema.Artwork, image []byte, mimeType string) *schema.Artwork {
	t.Helper()
	ctx := context.Background()

	artist := &schema.Artist{Name: "Jane Doe", UserID: userID}
	require.NoError(t, s.CreateArtist(ctx, artist))

	artwork.ArtistID = artist.ID
	require.NoError(t, s.CreateArtwork(ctx, artwork))

	if image != nil {
		require.NoError(t, s.SaveArtworkImage(ctx, &schema.ArtworkImage{
			ArtworkID: artwork.ID,
			Image:     image,
			MimeType:  mimeType,
		}))
	}

	return artwork
}
