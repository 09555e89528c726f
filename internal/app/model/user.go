package model

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	CreatedAt    time.Time `json:"created_at"`

	// Deleting a user removes the stores it owns and its customer record.
	Stores   []Store   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"stores,omitempty"`
	Customer *Customer `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
}

func (User) TableName() string {
	return "users"
}
