package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOption is a standalone catalog entry (e.g. "Card", "Bank Transfer").
type PaymentOption struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint     `gorm:"index" json:"created_by,omitempty"`

	CreatedBy *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Payments  []Payment `gorm:"foreignKey:PaymentOptionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PaymentOption) TableName() string {
	return "payment_options"
}

type Payment struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	OrderID         uint            `gorm:"not null;index" json:"order_id"`
	PaymentOptionID uint            `gorm:"not null;index" json:"payment_option_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2);not null;check:amount >= 0" json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	TransactionID   string          `gorm:"size:150;uniqueIndex;not null" json:"transaction_id"`

	Order         Order         `gorm:"foreignKey:OrderID" json:"-"`
	PaymentOption PaymentOption `gorm:"foreignKey:PaymentOptionID" json:"payment_option,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
