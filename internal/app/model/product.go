package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	StoreID     uint            `gorm:"not null;index" json:"store_id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Name        string          `gorm:"size:191;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price >= 0" json:"price"`
	Stock       uint            `gorm:"not null;default:0" json:"stock"`
	Image       string          `json:"image"` // stored object key, placeholder by default
	Available   bool            `gorm:"not null" json:"available"`
	Digital     *bool           `gorm:"default:true" json:"digital"` // nullable, defaults true
	CreatedOn   time.Time       `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint           `gorm:"index" json:"created_by,omitempty"`

	Store     Store            `gorm:"foreignKey:StoreID" json:"-"`
	Category  Category         `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedBy *User            `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Variants  []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Image == "" {
		p.Image = DefaultImageKey
	}
	return nil
}

// ImageURL resolves the stored image to a public URL, or "" when unresolvable.
func (p *Product) ImageURL(r ImageResolver) string {
	return resolveImageURL(r, p.Image)
}

// RequiresShipping reports whether the product is a physical good. Only an
// explicit digital=false counts; a null digital flag does not.
func (p *Product) RequiresShipping() bool {
	return p.Digital != nil && !*p.Digital
}

type ProductVariant struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	ProductID      uint            `gorm:"not null;index" json:"product_id"`
	Name           string          `gorm:"size:191;not null" json:"name"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price >= 0" json:"price"`
	Stock          uint            `gorm:"not null;default:0" json:"stock"`
	AdditionalInfo string          `gorm:"type:text" json:"additional_info"`
	Available      bool            `gorm:"not null" json:"available"`
	CreatedOn      time.Time       `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID    *uint           `gorm:"index" json:"created_by,omitempty"`

	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`

	// Deleting a variant removes the order line items that reference it.
	OrderItems []OrderItem `gorm:"foreignKey:ProductVariantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}
