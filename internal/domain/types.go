package domain

import "fmt"

// NFTData is the metadata record stored for NFTs and collections.
// ExternalID is the chain-native identifier, distinct from the row ID.
type NFTData struct {
	ExternalID  string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ExternalNFT is a single entry of the NFT indexer feed for a wallet.
// An entry without ExternalID is reported as failed by reconciliation, not rejected with the batch.
type ExternalNFT struct {
	ExternalID string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Metadata   *string `json:"metadata,omitempty"`
}

// Data converts the feed entry into the stored metadata record
func (n ExternalNFT) Data() NFTData {
	return toData(n.ExternalID, n.Name, n.Image, n.Metadata)
}

// ExternalCollection is a single entry of the collection indexer feed for a wallet
type ExternalCollection struct {
	ExternalID string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Metadata   *string `json:"metadata,omitempty"`
}

// Data converts the feed entry into the stored metadata record
func (c ExternalCollection) Data() NFTData {
	return toData(c.ExternalID, c.Name, c.Image, c.Metadata)
}

func toData(id, name, image string, metadata *string) NFTData {
	data := NFTData{
		ExternalID: id,
		Name:       name,
		Image:      image,
	}
	if metadata != nil {
		data.Description = *metadata
	}
	return data
}

// TrialMintState is the trial-mint lifecycle of a user.
// A user moves eligible -> claimed -> paid and never back.
type TrialMintState string

const (
	// TrialMintEligible means the user has not been granted a trial mint yet
	TrialMintEligible TrialMintState = "eligible"
	// TrialMintClaimed means a trial-minted NFT has been recorded against the user
	TrialMintClaimed TrialMintState = "claimed"
	// TrialMintPaid means the claimed trial mint has been paid for
	TrialMintPaid TrialMintState = "paid"
)

// Valid reports whether the state is a known trial-mint state
func (s TrialMintState) Valid() bool {
	switch s {
	case TrialMintEligible, TrialMintClaimed, TrialMintPaid:
		return true
	}
	return false
}

// Claimed reports whether a trial mint has been granted
func (s TrialMintState) Claimed() bool {
	return s == TrialMintClaimed || s == TrialMintPaid
}

// MintStatus is the outcome of a trial-mint request
type MintStatus string

const (
	// MintStatusMintedAlready means the request was rejected by the eligibility gate
	MintStatusMintedAlready MintStatus = "MintedAlready"
	// MintStatusSuccess means the NFT was minted and recorded against the user
	MintStatusSuccess MintStatus = "Success"
	// MintStatusFailed means the minting service did not confirm the mint
	MintStatusFailed MintStatus = "Failed"
)

// IngestOutcome is the per-item outcome of a reconciliation batch
type IngestOutcome string

const (
	IngestOutcomeInserted IngestOutcome = "inserted"
	IngestOutcomeSkipped  IngestOutcome = "skipped"
	IngestOutcomeFailed   IngestOutcome = "failed"
)

// Skip reasons reported for IngestOutcomeSkipped
const (
	SkipReasonAlreadyExists    = "already_exists"
	SkipReasonConcurrentInsert = "concurrent_insert"
)

// IngestResult reports what happened to a single item of an ingest batch
type IngestResult struct {
	ExternalID string        `json:"id"`
	Outcome    IngestOutcome `json:"outcome"`
	Reason     string        `json:"reason,omitempty"`
	Err        error         `json:"-"`
}

func (r IngestResult) String() string {
	switch r.Outcome {
	case IngestOutcomeSkipped:
		return fmt.Sprintf("%s: %s (%s)", r.ExternalID, r.Outcome, r.Reason)
	case IngestOutcomeFailed:
		return fmt.Sprintf("%s: %s (%v)", r.ExternalID, r.Outcome, r.Err)
	default:
		return fmt.Sprintf("%s: %s", r.ExternalID, r.Outcome)
	}
}
