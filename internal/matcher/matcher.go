// Package matcher derives NFT to collection membership from external identifiers.
//
// An NFT external ID has the form "<collectionPart>-<tokenPart>" (for example
// "u421-10", where the "u" prefix marks the uniques pallet) or a bare
// "<tokenPart>". The part before the first separator is the key of the owning
// collection. A bare ID is its own key, so it can only match a collection that
// happens to share the exact same external ID.
package matcher

import (
	"strings"

	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// CollectionKey returns the collection external ID encoded in an NFT external ID
func CollectionKey(nftExternalID string) string {
	key, _, _ := strings.Cut(nftExternalID, domain.EXTERNAL_ID_SEPARATOR)
	return key
}

// MatchCollection returns the first candidate whose external ID equals the
// collection key of nftExternalID, or nil when none matches.
// Candidates are scanned in the order given.
func MatchCollection(nftExternalID string, candidates []schema.Collection) *schema.Collection {
	if len(candidates) == 0 {
		return nil
	}

	key := CollectionKey(nftExternalID)
	for i := range candidates {
		if candidates[i].ExternalID == key {
			return &candidates[i]
		}
	}

	return nil
}
