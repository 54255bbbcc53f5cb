package dto

import (
	"time"

	"github.com/eva-gallery/eva-nft/internal/domain"
)

// NFTResponse represents a stored NFT
type NFTResponse struct {
	ID             string         `json:"id"`
	ExternalID     string         `json:"external_id"`
	Metadata       domain.NFTData `json:"metadata"`
	OnlineCheckURL string         `json:"online_check_url"`
	WalletID       string         `json:"wallet_id"`
	CollectionID   *string        `json:"collection_id,omitempty"`
	ArtworkID      *string        `json:"artwork_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// CollectionResponse represents a stored collection
type CollectionResponse struct {
	ID             string         `json:"id"`
	ExternalID     string         `json:"external_id"`
	Metadata       domain.NFTData `json:"metadata"`
	OnlineCheckURL string         `json:"online_check_url"`
	WalletID       string         `json:"wallet_id"`
	CreatedAt      time.Time      `json:"created_at"`
}

// WalletResponse represents a tracked wallet, optionally with its holdings
type WalletResponse struct {
	ID             string               `json:"id"`
	Address        string               `json:"address"`
	OnlineCheckURL string               `json:"online_check_url"`
	UserID         *string              `json:"user_id,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	NFTs           []NFTResponse        `json:"nfts,omitempty"`
	Collections    []CollectionResponse `json:"collections,omitempty"`
}

// WalletListResponse represents the wallets of a user
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// UserResponse represents a user without its private fields
type UserResponse struct {
	ID             string                `json:"id"`
	TrialMintState domain.TrialMintState `json:"trial_mint_state"`
}

// IngestItemResponse is the outcome of a single ingested item
type IngestItemResponse struct {
	ID      string               `json:"id"`
	Outcome domain.IngestOutcome `json:"outcome"`
	Reason  string               `json:"reason,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// IngestResponse summarizes an ingest batch
type IngestResponse struct {
	Inserted int                  `json:"inserted"`
	Skipped  int                  `json:"skipped"`
	Failed   int                  `json:"failed"`
	Results  []IngestItemResponse `json:"results"`
}

// TrialMintResponse is the outcome of a trial-mint request
type TrialMintResponse struct {
	Status domain.MintStatus `json:"status"`
}

// TrialMintStateResponse represents the trial-mint state of a user
type TrialMintStateResponse struct {
	State domain.TrialMintState `json:"state"`
	NFT   *NFTResponse          `json:"nft,omitempty"`
}

// ArtworkMintedResponse reports whether an artwork has been minted
type ArtworkMintedResponse struct {
	ArtworkID string `json:"artwork_id"`
	Minted    bool   `json:"minted"`
}
