package reconcile

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/store"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
	"github.com/eva-gallery/eva-nft/internal/store/storetest"
)

const (
	testKodadotURL = "https://kodadot.xyz/ahp"
	testWallet     = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

func newTestEngine(t *testing.T) (Engine, store.Store) {
	s := storetest.NewSQLiteStore(t)
	return NewEngine(s, Config{KodadotURL: testKodadotURL}), s
}

func nft(id string) domain.ExternalNFT {
	return domain.ExternalNFT{ExternalID: id, Name: "NFT " + id, Image: "https://example.com/" + id + ".png"}
}

func collection(id string) domain.ExternalCollection {
	return domain.ExternalCollection{ExternalID: id, Name: "Collection " + id}
}

func outcomes(results []domain.IngestResult) []domain.IngestOutcome {
	out := make([]domain.IngestOutcome, len(results))
	for i, r := range results {
		out[i] = r.Outcome
	}
	return out
}

func TestIngestCollections(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	description := "first collection"
	first := collection("u421")
	first.Metadata = &description

	results, err := engine.IngestCollections(ctx, user.ID, testWallet, []domain.ExternalCollection{first, collection("u422")})
	require.NoError(t, err)
	assert.Equal(t, []domain.IngestOutcome{domain.IngestOutcomeInserted, domain.IngestOutcomeInserted}, outcomes(results))

	stored, err := s.FindCollectionByExternalID(ctx, "u421")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "first collection", stored.Metadata.Data().Description)
	assert.Equal(t, testKodadotURL+"/collection/u421", stored.OnlineCheckURL)

	wallet, err := s.GetWalletByAddress(ctx, testWallet)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	require.NotNil(t, wallet.UserID)
	assert.Equal(t, user.ID, *wallet.UserID)
	assert.Equal(t, wallet.ID, stored.WalletID)

	// Second run skips everything already stored
	results, err = engine.IngestCollections(ctx, user.ID, testWallet, []domain.ExternalCollection{collection("u421"), collection("u423")})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.IngestOutcomeSkipped, results[0].Outcome)
	assert.Equal(t, domain.SkipReasonAlreadyExists, results[0].Reason)
	assert.Equal(t, domain.IngestOutcomeInserted, results[1].Outcome)

	collections, err := s.ListCollectionsForWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Len(t, collections, 3)
}

func TestIngestNFTsMatchesCollections(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	_, err := engine.IngestCollections(ctx, user.ID, testWallet, []domain.ExternalCollection{collection("u421")})
	require.NoError(t, err)

	results, err := engine.IngestNFTs(ctx, user.ID, testWallet, []domain.ExternalNFT{nft("u421-10"), nft("999-5"), nft("u421")})
	require.NoError(t, err)
	assert.Equal(t, []domain.IngestOutcome{
		domain.IngestOutcomeInserted,
		domain.IngestOutcomeInserted,
		domain.IngestOutcomeInserted,
	}, outcomes(results))

	owned, err := s.FindCollectionByExternalID(ctx, "u421")
	require.NoError(t, err)
	require.NotNil(t, owned)

	matched, err := s.FindNFTByExternalID(ctx, "u421-10")
	require.NoError(t, err)
	require.NotNil(t, matched)
	require.NotNil(t, matched.CollectionID)
	assert.Equal(t, owned.ID, *matched.CollectionID)
	assert.Equal(t, testKodadotURL+"/gallery/u421-10", matched.OnlineCheckURL)
	assert.Equal(t, "NFT u421-10", matched.Metadata.Data().Name)

	unmatched, err := s.FindNFTByExternalID(ctx, "999-5")
	require.NoError(t, err)
	require.NotNil(t, unmatched)
	assert.Nil(t, unmatched.CollectionID)

	// A bare ID is its own key and links to a collection sharing that exact ID
	bare, err := s.FindNFTByExternalID(ctx, "u421")
	require.NoError(t, err)
	require.NotNil(t, bare)
	require.NotNil(t, bare.CollectionID)
	assert.Equal(t, owned.ID, *bare.CollectionID)
}

func TestIngestNFTsNewWalletHasNoCandidates(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	// The collection belongs to a different wallet
	_, err := engine.IngestCollections(ctx, user.ID, "5Other", []domain.ExternalCollection{collection("u421")})
	require.NoError(t, err)

	results, err := engine.IngestNFTs(ctx, user.ID, testWallet, []domain.ExternalNFT{nft("u421-10")})
	require.NoError(t, err)
	assert.Equal(t, []domain.IngestOutcome{domain.IngestOutcomeInserted}, outcomes(results))

	stored, err := s.FindNFTByExternalID(ctx, "u421-10")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.CollectionID)
}

func TestIngestNFTsIdempotent(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	for i := 0; i < 2; i++ {
		_, err := engine.IngestNFTs(ctx, user.ID, testWallet, []domain.ExternalNFT{nft("u1-1")})
		require.NoError(t, err)
	}

	nfts, err := s.ListWalletNFTs(ctx, testWallet)
	require.NoError(t, err)
	assert.Len(t, nfts, 1)

	// Duplicates inside one batch are processed in order
	results, err := engine.IngestNFTs(ctx, user.ID, testWallet, []domain.ExternalNFT{nft("u1-2"), nft("u1-2")})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.IngestOutcomeInserted, results[0].Outcome)
	assert.Equal(t, domain.IngestOutcomeSkipped, results[1].Outcome)
}

func TestIngestNFTsConcurrent(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	batch := []domain.ExternalNFT{nft("u7-1"), nft("u7-2"), nft("u7-3")}

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.IngestNFTs(ctx, user.ID, testWallet, batch)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	nfts, err := s.ListWalletNFTs(ctx, testWallet)
	require.NoError(t, err)
	assert.Len(t, nfts, 3)
}

func TestIngestNFTsFailedItemDoesNotStopBatch(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	results, err := engine.IngestNFTs(ctx, user.ID, testWallet, []domain.ExternalNFT{nft(""), nft("u1-1")})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.IngestOutcomeFailed, results[0].Outcome)
	assert.Error(t, results[0].Err)
	assert.Equal(t, domain.IngestOutcomeInserted, results[1].Outcome)
}

func TestIngestUnknownUser(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.IngestNFTs(context.Background(), "missing", testWallet, []domain.ExternalNFT{nft("u1-1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = engine.IngestCollections(context.Background(), "missing", testWallet, []domain.ExternalCollection{collection("u1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngestWithoutOwner(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)

	_, err := engine.IngestNFTs(ctx, "", testWallet, []domain.ExternalNFT{nft("u1-1")})
	require.NoError(t, err)

	wallet, err := s.GetWalletByAddress(ctx, testWallet)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Nil(t, wallet.UserID)
}

func TestIngestCancelledContext(t *testing.T) {
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.IngestNFTs(ctx, user.ID, testWallet, []domain.ExternalNFT{nft("u1-1")})
	assert.Error(t, err)
}

func TestCreateNFT(t *testing.T) {
	ctx := context.Background()
	engine, s := newTestEngine(t)
	user := storetest.CreateUser(t, s)

	_, err := engine.IngestCollections(ctx, "", "5Houseaddr", []domain.ExternalCollection{collection("u421")})
	require.NoError(t, err)

	artwork := storetest.CreateArtwork(t, s, user.ID, &schema.Artwork{Name: "Sunset"}, nil, "")

	data := domain.NFTData{ExternalID: "u421-10", Name: "Sunset", Description: "d", Image: "https://flk-ipfs.xyz/ipfs/cidY"}
	created, err := engine.CreateNFT(ctx, data, "5Houseaddr", &artwork.ID)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.CollectionID)
	require.NotNil(t, created.ArtworkID)
	assert.Equal(t, artwork.ID, *created.ArtworkID)

	stored, err := s.GetNFT(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, data, stored.Metadata.Data())

	// The same external ID cannot be created twice
	_, err = engine.CreateNFT(ctx, data, "5Houseaddr", nil)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}
