package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultImageKey is the placeholder object key used when no image has been
// uploaded for a store logo or product image.
const DefaultImageKey = "static/assets/img/logo.png"

type Store struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Logo        string    `json:"logo"` // stored object key, placeholder by default
	Website     string    `json:"website"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint     `gorm:"index" json:"created_by,omitempty"`

	Owner     User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedBy *User           `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Locations []StoreLocation `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"locations,omitempty"`
	Products  []Product       `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Orders    []Order         `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}

// BeforeCreate applies the placeholder logo when none was uploaded.
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.Logo == "" {
		s.Logo = DefaultImageKey
	}
	return nil
}

// LogoURL resolves the stored logo to a public URL, or "" when unresolvable.
func (s *Store) LogoURL(r ImageResolver) string {
	return resolveImageURL(r, s.Logo)
}

type StoreLocation struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	StoreID     uint      `gorm:"not null;index" json:"store_id"`
	Address     string    `gorm:"type:text" json:"address"`
	City        string    `gorm:"size:191;not null" json:"city"`
	State       string    `gorm:"size:191;not null" json:"state"`
	PostalCode  string    `gorm:"size:20" json:"postal_code"`
	Country     string    `gorm:"size:191;not null" json:"country"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number,omitempty"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint     `gorm:"index" json:"created_by,omitempty"`

	Store     Store `gorm:"foreignKey:StoreID" json:"-"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
}

func (StoreLocation) TableName() string {
	return "store_locations"
}
