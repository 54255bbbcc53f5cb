package dto

import (
	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// MapNFTToDTO maps a schema.NFT to NFTResponse
func MapNFTToDTO(nft *schema.NFT) *NFTResponse {
	return &NFTResponse{
		ID:             nft.ID,
		ExternalID:     nft.ExternalID,
		Metadata:       nft.Metadata.Data(),
		OnlineCheckURL: nft.OnlineCheckURL,
		WalletID:       nft.WalletID,
		CollectionID:   nft.CollectionID,
		ArtworkID:      nft.ArtworkID,
		CreatedAt:      nft.CreatedAt,
	}
}

// MapCollectionToDTO maps a schema.Collection to CollectionResponse
func MapCollectionToDTO(collection *schema.Collection) *CollectionResponse {
	return &CollectionResponse{
		ID:             collection.ID,
		ExternalID:     collection.ExternalID,
		Metadata:       collection.Metadata.Data(),
		OnlineCheckURL: collection.OnlineCheckURL,
		WalletID:       collection.WalletID,
		CreatedAt:      collection.CreatedAt,
	}
}

// MapWalletToDTO maps a schema.Wallet and its loaded holdings to WalletResponse
func MapWalletToDTO(wallet *schema.Wallet) *WalletResponse {
	resp := &WalletResponse{
		ID:             wallet.ID,
		Address:        wallet.Address,
		OnlineCheckURL: wallet.OnlineCheckURL,
		UserID:         wallet.UserID,
		CreatedAt:      wallet.CreatedAt,
	}

	for i := range wallet.NFTs {
		resp.NFTs = append(resp.NFTs, *MapNFTToDTO(&wallet.NFTs[i]))
	}
	for i := range wallet.Collections {
		resp.Collections = append(resp.Collections, *MapCollectionToDTO(&wallet.Collections[i]))
	}

	return resp
}

// MapUserToDTO maps a schema.User to UserResponse
func MapUserToDTO(user *schema.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		TrialMintState: user.TrialMintState,
	}
}

// MapIngestResults summarizes per-item ingest results
func MapIngestResults(results []domain.IngestResult) *IngestResponse {
	resp := &IngestResponse{Results: make([]IngestItemResponse, 0, len(results))}
	for _, r := range results {
		item := IngestItemResponse{ID: r.ExternalID, Outcome: r.Outcome, Reason: r.Reason}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		resp.Results = append(resp.Results, item)

		switch r.Outcome {
		case domain.IngestOutcomeInserted:
			resp.Inserted++
		case domain.IngestOutcomeSkipped:
			resp.Skipped++
		case domain.IngestOutcomeFailed:
			resp.Failed++
		}
	}
	return resp
}
