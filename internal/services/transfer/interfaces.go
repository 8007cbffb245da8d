package transfer

import (
	"context"

	"paywave/internal/models"

	"github.com/shopspring/decimal"
)

// Service executes peer-to-peer transfers and serves the caller's
// payment history.
type Service interface {
	// Transfer moves amount from the sender (resolved by external auth
	// UID) to the user registered under recipientPhone, appending one
	// COMPLETED payment. The three mutations commit together or not at
	// all.
	Transfer(ctx context.Context, senderAuthUID, recipientPhone string, amount decimal.Decimal, description string) (*models.Payment, error)

	// ListTransactions returns up to HistoryLimit payments involving the
	// user, newest first, with sender/recipient summaries embedded. The
	// result is a finite snapshot, not a live feed.
	ListTransactions(ctx context.Context, userID uint) ([]models.PaymentView, error)
}
