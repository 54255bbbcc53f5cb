package schema

import (
	"time"

	"gorm.io/gorm"
)

// Wallet represents the wallets table - a chain address, optionally claimed by a user
type Wallet struct {
	// ID is the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Address is the chain-native wallet address
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// OnlineCheckURL links to the wallet on a block explorer
	OnlineCheckURL string `gorm:"column:online_check_url;type:text"`
	// UserID references the owning user, nil while the wallet is unclaimed
	UserID *string `gorm:"column:user_id;type:text;index"`
	// CreatedAt is when the wallet was first tracked
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	// Associations
	User        *User        `gorm:"foreignKey:UserID"`
	NFTs        []NFT        `gorm:"foreignKey:WalletID"`
	Collections []Collection `gorm:"foreignKey:WalletID"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}

// BeforeCreate assigns an ID
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = NewID()
	}
	return nil
}
