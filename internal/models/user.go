package models

import (
	"time"
)

// User is the identity record for one authenticated person. AuthUID is
// the stable identifier issued by the external identity provider; the
// record is created once per identity by the provisioning service.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AuthUID   string    `gorm:"uniqueIndex;not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"uniqueIndex;not null" json:"phone"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Wallet    *Wallet   `gorm:"foreignKey:UserID" json:"wallet,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the shape embedded in payment history responses.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Summary strips the user down to what a counterparty may see.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Phone: u.Phone}
}

// CreateUserInput is the provisioning profile for a new identity.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
