package repositories

import (
	"context"

	"paywave/internal/models"
)

// PaymentRepository reads the append-only payment ledger. Writes happen
// through WalletRepository.CreatePayment inside the transfer unit.
type PaymentRepository interface {
	// ListByUser returns the newest payments where the user is sender or
	// recipient, counterparties preloaded, most recent first.
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Payment, error)
}
