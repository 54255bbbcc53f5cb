package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-gallery/eva-nft/internal/api/shared/dto"
	apierrors "github.com/eva-gallery/eva-nft/internal/api/shared/errors"
	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/mocks"
)

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	SetupRoutes(router, NewHandler(exec))
	return router, exec
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	t.Helper()
	var resp struct {
		Error *apierrors.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := perform(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestIngestNFTs(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		IngestNFTs(gomock.Any(), "user-1", "5Walletaddr", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, req *dto.IngestNFTsRequest) (*dto.IngestResponse, error) {
			require.Len(t, req.NFTs, 1)
			assert.Equal(t, "u421-10", req.NFTs[0].ExternalID)
			return &dto.IngestResponse{
				Inserted: 1,
				Results:  []dto.IngestItemResponse{{ID: "u421-10", Outcome: domain.IngestOutcomeInserted}},
			}, nil
		})

	w := perform(router, http.MethodPost, "/api/v1/users/user-1/wallets/5Walletaddr/nfts",
		`{"nfts":[{"id":"u421-10","name":"Sunset","image":"ipfs://cid"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.IngestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Inserted)
	assert.Len(t, resp.Results, 1)
}

func TestIngestNFTsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"nfts":`},
		{name: "missing list", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter(t)

			w := perform(router, http.MethodPost, "/api/v1/users/user-1/wallets/5Walletaddr/nfts", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
		})
	}
}

func TestIngestNFTsMissingExternalIDReachesExecutor(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		IngestNFTs(gomock.Any(), "user-1", "5Walletaddr", &dto.IngestNFTsRequest{NFTs: []domain.ExternalNFT{
			{Name: "Sunset"},
			{ExternalID: "77-1", Name: "Dawn"},
		}}).
		Return(&dto.IngestResponse{Inserted: 1, Failed: 1}, nil)

	w := perform(router, http.MethodPost, "/api/v1/users/user-1/wallets/5Walletaddr/nfts",
		`{"nfts":[{"name":"Sunset"},{"id":"77-1","name":"Dawn"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"failed":1`)
}

func TestIngestCollections(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		IngestCollections(gomock.Any(), "user-1", "5Walletaddr", gomock.Any()).
		Return(&dto.IngestResponse{Skipped: 1}, nil)

	w := perform(router, http.MethodPost, "/api/v1/users/user-1/wallets/5Walletaddr/collections",
		`{"collections":[{"id":"u421","name":"House"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"skipped":1`)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{name: "not found", err: apierrors.NewNotFoundError("NFT not found"), status: http.StatusNotFound, code: apierrors.ErrCodeNotFound},
		{name: "conflict", err: apierrors.NewConflictError("taken"), status: http.StatusConflict, code: apierrors.ErrCodeConflict},
		{name: "bad request", err: apierrors.NewBadRequestError("bad"), status: http.StatusBadRequest, code: apierrors.ErrCodeBadRequest},
		{name: "service error", err: apierrors.NewServiceError("minting down"), status: http.StatusBadGateway, code: apierrors.ErrCodeServiceError},
		{name: "database error", err: apierrors.NewDatabaseError("db down"), status: http.StatusInternalServerError, code: apierrors.ErrCodeDatabaseError},
		{name: "plain error", err: errors.New("boom"), status: http.StatusInternalServerError, code: apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupRouter(t)
			exec.EXPECT().GetNFT(gomock.Any(), "nft-1").Return(nil, tt.err)

			w := perform(router, http.MethodGet, "/api/v1/nfts/nft-1", "")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestRemoveNFT(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().RemoveNFT(gomock.Any(), "nft-1").Return(nil)

	w := perform(router, http.MethodDelete, "/api/v1/nfts/nft-1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpdateNFTMetadata(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().
			UpdateNFTMetadata(gomock.Any(), "nft-1", &dto.UpdateNFTMetadataRequest{Name: "Dawn", Image: "ipfs://new"}).
			Return(&dto.NFTResponse{ID: "nft-1", ExternalID: "u421-10"}, nil)

		w := perform(router, http.MethodPut, "/api/v1/nfts/nft-1/metadata", `{"name":"Dawn","image":"ipfs://new"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"external_id":"u421-10"`)
	})

	t.Run("missing name", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := perform(router, http.MethodPut, "/api/v1/nfts/nft-1/metadata", `{"image":"ipfs://new"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestChangeNFTOwner(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().
		ChangeNFTOwner(gomock.Any(), "nft-1", &dto.ChangeNFTOwnerRequest{Address: "5Other"}).
		Return(nil, apierrors.NewNotFoundError("Wallet not found"))

	w := perform(router, http.MethodPut, "/api/v1/nfts/nft-1/owner", `{"address":"5Other"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTrialMint(t *testing.T) {
	tests := []struct {
		name   string
		status domain.MintStatus
	}{
		{name: "success", status: domain.MintStatusSuccess},
		{name: "minted already", status: domain.MintStatusMintedAlready},
		{name: "failed", status: domain.MintStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupRouter(t)
			exec.EXPECT().
				CreateTrialMint(gomock.Any(), "user-1", "art-1").
				Return(&dto.TrialMintResponse{Status: tt.status}, nil)

			w := perform(router, http.MethodPost, "/api/v1/users/user-1/artworks/art-1/trial-mint", "")

			require.Equal(t, http.StatusOK, w.Code)
			var resp dto.TrialMintResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Status)
		})
	}
}

func TestTrialMintState(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().
		PayTrialMint(gomock.Any(), "user-1").
		Return(&dto.TrialMintStateResponse{State: domain.TrialMintPaid}, nil)
	exec.EXPECT().
		GetTrialMint(gomock.Any(), "user-1").
		Return(&dto.TrialMintStateResponse{State: domain.TrialMintPaid}, nil)

	w := perform(router, http.MethodPost, "/api/v1/users/user-1/trial-mint/pay", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"paid"`)

	w = perform(router, http.MethodGet, "/api/v1/users/user-1/trial-mint", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"paid"`)
}

func TestWalletRoutes(t *testing.T) {
	router, exec := setupRouter(t)
	userID := "user-1"
	exec.EXPECT().
		AssignWallet(gomock.Any(), userID, "5Walletaddr").
		Return(&dto.WalletResponse{ID: "w-1", Address: "5Walletaddr", UserID: &userID}, nil)
	exec.EXPECT().
		GetUserWallets(gomock.Any(), userID).
		Return(&dto.WalletListResponse{Wallets: []dto.WalletResponse{{ID: "w-1", Address: "5Walletaddr"}}}, nil)
	exec.EXPECT().
		GetWallet(gomock.Any(), "5Walletaddr").
		Return(&dto.WalletResponse{ID: "w-1", Address: "5Walletaddr"}, nil)
	exec.EXPECT().
		GetWalletUser(gomock.Any(), "5Walletaddr").
		Return(&dto.UserResponse{ID: userID, TrialMintState: domain.TrialMintEligible}, nil)

	w := perform(router, http.MethodPost, "/api/v1/users/user-1/wallets/5Walletaddr", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)

	w = perform(router, http.MethodGet, "/api/v1/users/user-1/wallets", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wallets":[`)

	w = perform(router, http.MethodGet, "/api/v1/wallets/5Walletaddr", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/api/v1/wallets/5Walletaddr/user", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trial_mint_state":"eligible"`)
}

func TestIsArtworkMinted(t *testing.T) {
	router, exec := setupRouter(t)
	exec.EXPECT().
		IsArtworkMinted(gomock.Any(), "art-1").
		Return(&dto.ArtworkMintedResponse{Minted: true}, nil)

	w := perform(router, http.MethodGet, "/api/v1/artworks/art-1/minted", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"minted":true`)
}
