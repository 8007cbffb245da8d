package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// Payment is one immutable ledger entry. A row is created exactly once
// per successful transfer, inside the same transaction that moves the
// balances, and is never updated or deleted afterwards.
type Payment struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	ReferenceID  string          `gorm:"uniqueIndex;not null" json:"reference_id"`
	FromUserID   uint            `gorm:"index;not null" json:"from_user_id"`
	ToUserID     uint            `gorm:"index;not null" json:"to_user_id"`
	FromWalletID uint            `gorm:"not null" json:"from_wallet_id"`
	ToWalletID   uint            `gorm:"not null" json:"to_wallet_id"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Description  string          `json:"description"`
	Status       string          `gorm:"not null;default:'PENDING'" json:"status"`
	FromUser     *User           `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser       *User           `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PaymentView is the history response shape: the ledger row with the
// counterparties collapsed to summaries.
type PaymentView struct {
	ID          uint            `json:"id"`
	ReferenceID string          `json:"reference_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	FromUser    UserSummary     `json:"from_user"`
	ToUser      UserSummary     `json:"to_user"`
	CreatedAt   time.Time       `json:"created_at"`
}

// View converts a preloaded payment into its response shape.
func (p *Payment) View() PaymentView {
	v := PaymentView{
		ID:          p.ID,
		ReferenceID: p.ReferenceID,
		Amount:      p.Amount,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.FromUser != nil {
		v.FromUser = p.FromUser.Summary()
	}
	if p.ToUser != nil {
		v.ToUser = p.ToUser.Summary()
	}
	return v
}
