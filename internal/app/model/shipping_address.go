package model

import (
	"time"
)

// ShippingAddress may outlive the customer and order it was captured for:
// both references go null on delete, the address row itself is kept.
type ShippingAddress struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CustomerID *uint  `gorm:"index" json:"customer_id,omitempty"`
	OrderID    *uint  `gorm:"index" json:"order_id,omitempty"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	Zipcode    string `gorm:"size:100" json:"zipcode"`
	// DateAdded refreshes on every save, not only at creation ("last touched").
	DateAdded time.Time `gorm:"autoUpdateTime" json:"date_added"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	Order    *Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"-"`
}

func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
