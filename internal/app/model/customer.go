package model

import (
	"time"
)

// Customer is the buyer profile, exactly one per user.
type Customer struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Address     string    `gorm:"type:text" json:"address"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint     `gorm:"index" json:"created_by,omitempty"`

	User      User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Orders    []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
