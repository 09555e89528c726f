package model

import (
	"time"
)

// Industry is the top-level taxonomy root. Names are globally unique.
type Industry struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint     `gorm:"index" json:"created_by,omitempty"`

	CreatedBy  *User      `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Categories []Category `gorm:"foreignKey:IndustryID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

func (Industry) TableName() string {
	return "industries"
}

type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	IndustryID  uint      `gorm:"not null;index" json:"industry_id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	CreatedByID *uint     `gorm:"index" json:"created_by,omitempty"`

	Industry  Industry  `gorm:"foreignKey:IndustryID" json:"-"`
	CreatedBy *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Products  []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
