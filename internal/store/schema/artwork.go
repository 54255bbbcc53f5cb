package schema

import (
	"time"

	"gorm.io/gorm"
)

// Artist represents the artists table - the artist profile of a user
type Artist struct {
	ID     string `gorm:"column:id;primaryKey;type:text"`
	Name   string `gorm:"column:name;not null;type:text"`
	UserID string `gorm:"column:user_id;not null;type:text;index"`

	User *User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the Artist model
func (Artist) TableName() string {
	return "artists"
}

// BeforeCreate assigns an ID
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// Artwork represents the artworks table - a physical or digital artwork that may be minted
type Artwork struct {
	// ID is the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ArtistID references the artist who made the artwork
	ArtistID string `gorm:"column:artist_id;not null;type:text;index"`
	// Descriptive fields, empty when unknown
	Name         string `gorm:"column:name;not null;type:text"`
	Description  string `gorm:"column:description;type:text"`
	Year         int    `gorm:"column:year"`
	Genre        string `gorm:"column:genre;type:text"`
	Material     string `gorm:"column:material;type:text"`
	Technique    string `gorm:"column:technique;type:text"`
	Worktype     string `gorm:"column:worktype;type:text"`
	Measurements string `gorm:"column:measurements;type:text"`
	// NFTID references the NFT minted from this artwork
	NFTID *string `gorm:"column:nft_id;type:text"`
	// CreatedAt is when the artwork was created
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	// Associations
	Artist *Artist `gorm:"foreignKey:ArtistID"`
}

// TableName specifies the table name for the Artwork model
func (Artwork) TableName() string {
	return "artworks"
}

// BeforeCreate assigns an ID
func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// ArtworkImage represents the artwork_images table - the stored image asset of an artwork
type ArtworkImage struct {
	// ArtworkID references the artwork (primary key, one-to-one relationship)
	ArtworkID string `gorm:"column:artwork_id;primaryKey;type:text"`
	// Image is the raw image content
	Image []byte `gorm:"column:image;not null"`
	// MimeType is the stored content type of Image
	MimeType string `gorm:"column:mime_type;type:text"`
}

// TableName specifies the table name for the ArtworkImage model
func (ArtworkImage) TableName() string {
	return "artwork_images"
}
