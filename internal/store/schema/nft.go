package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/eva-gallery/eva-nft/internal/domain"
)

// Collection represents the collections table - an on-chain collection owned by a wallet
type Collection struct {
	// ID is the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ExternalID mirrors Metadata.ExternalID and carries the global uniqueness constraint
	ExternalID string `gorm:"column:external_id;not null;uniqueIndex;type:text"`
	// Metadata is the collection metadata record
	Metadata datatypes.JSONType[domain.NFTData] `gorm:"column:metadata;not null"`
	// OnlineCheckURL links to the collection on a marketplace
	OnlineCheckURL string `gorm:"column:online_check_url;type:text"`
	// WalletID references the owning wallet
	WalletID string `gorm:"column:wallet_id;not null;type:text;index:idx_collections_wallet_created,priority:1"`
	// CreatedAt is when the collection was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_collections_wallet_created,priority:2"`

	// Associations
	Wallet *Wallet `gorm:"foreignKey:WalletID"`
	NFTs   []NFT   `gorm:"foreignKey:CollectionID"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}

// BeforeCreate assigns an ID
func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// BeforeSave keeps the external ID column in sync with the metadata
func (c *Collection) BeforeSave(tx *gorm.DB) error {
	c.ExternalID = c.Metadata.Data().ExternalID
	return nil
}

// NFT represents the nfts table - an on-chain token owned by a wallet
type NFT struct {
	// ID is the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ExternalID mirrors Metadata.ExternalID and carries the global uniqueness constraint
	ExternalID string `gorm:"column:external_id;not null;uniqueIndex;type:text"`
	// Metadata is the NFT metadata record
	Metadata datatypes.JSONType[domain.NFTData] `gorm:"column:metadata;not null"`
	// OnlineCheckURL links to the NFT on a marketplace
	OnlineCheckURL string `gorm:"column:online_check_url;type:text"`
	// WalletID references the owning wallet
	WalletID string `gorm:"column:wallet_id;not null;type:text;index"`
	// CollectionID references the collection the NFT belongs to, if known
	CollectionID *string `gorm:"column:collection_id;type:text;index"`
	// ArtworkID references the artwork the NFT was minted from, if any
	ArtworkID *string `gorm:"column:artwork_id;type:text"`
	// CreatedAt is when the NFT was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	// Associations
	Wallet     *Wallet     `gorm:"foreignKey:WalletID"`
	Collection *Collection `gorm:"foreignKey:CollectionID"`
	Artwork    *Artwork    `gorm:"foreignKey:ArtworkID"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}

// BeforeCreate assigns an ID
func (n *NFT) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = NewID()
	}
	return nil
}

// BeforeSave keeps the external ID column in sync with the metadata
func (n *NFT) BeforeSave(tx *gorm.DB) error {
	n.ExternalID = n.Metadata.Data().ExternalID
	return nil
}

// Models lists every model managed by the store, in migration order
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Wallet{},
		&Artist{},
		&Artwork{},
		&ArtworkImage{},
		&Collection{},
		&NFT{},
	}
}
