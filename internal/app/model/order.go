package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the initial status of every order. Status is
// free-text; downstream systems may write their own values.
const OrderStatusPending = "Pending"

type Order struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	StoreID     uint            `gorm:"not null;index" json:"store_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;check:total_amount >= 0" json:"total_amount"`
	Status      string          `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`

	Customer Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Store    Store       `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// Shipping reports whether any line item references a physical product.
// Requires Items with their variants' products preloaded.
func (o *Order) Shipping() bool {
	for i := range o.Items {
		if o.Items[i].ProductVariant.Product.RequiresShipping() {
			return true
		}
	}
	return false
}

// CartTotal sums the line item totals. Like the line items themselves this
// uses the CURRENT variant price, not the snapshot taken at order time, so a
// later price change moves historical totals. Kept intentionally.
func (o *Order) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Total())
	}
	return total
}

// CartItems sums the quantities across all line items.
func (o *Order) CartItems() uint {
	var total uint
	for i := range o.Items {
		total += o.Items[i].Quantity
	}
	return total
}

type OrderItem struct {
	ID               uint `gorm:"primarykey" json:"id"`
	OrderID          uint `gorm:"not null;index" json:"order_id"`
	ProductVariantID uint `gorm:"not null;index" json:"product_variant_id"`
	Quantity         uint `gorm:"not null" json:"quantity"`
	// Price is the unit price snapshot taken when the item was added. It is
	// never recomputed from the variant.
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price >= 0" json:"price"`
	CreatedAt time.Time       `json:"created_at"`

	Order          Order          `gorm:"foreignKey:OrderID" json:"-"`
	ProductVariant ProductVariant `gorm:"foreignKey:ProductVariantID" json:"product_variant,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Total is the current variant price times quantity. Requires ProductVariant
// preloaded; note this deliberately ignores the snapshot Price.
func (i *OrderItem) Total() decimal.Decimal {
	return i.ProductVariant.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
