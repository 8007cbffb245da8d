package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds one user's balance. All mutation goes through the wallet
// repository's atomic debit/credit operations; the balance never drops
// below zero.
type Wallet struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
