package schema

import (
	"time"

	"gorm.io/gorm"

	"github.com/eva-gallery/eva-nft/internal/domain"
)

// User represents the users table - an account that links wallets and owns artworks through its artist profile
type User struct {
	// ID is the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TrialMintState is the trial-mint lifecycle state (eligible, claimed, paid)
	TrialMintState domain.TrialMintState `gorm:"column:trial_mint_state;not null;default:'eligible';type:text"`
	// TrialMintNFTID references the trial-minted NFT, set together with the claimed state
	TrialMintNFTID *string `gorm:"column:trial_mint_nft_id;type:text"`
	// CreatedAt is when the user was created
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is when the user was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`

	// Associations
	Wallets []Wallet `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID and the initial trial-mint state
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.TrialMintState == "" {
		u.TrialMintState = domain.TrialMintEligible
	}
	return nil
}

// TrialMintClaimed reports whether the user has been granted a trial mint
func (u *User) TrialMintClaimed() bool {
	return u.TrialMintState.Claimed()
}

// TrialMintPaid reports whether the user's trial mint has been paid for
func (u *User) TrialMintPaid() bool {
	return u.TrialMintState == domain.TrialMintPaid
}
