package wallet

import (
	"context"

	"paywave/internal/models"

	"github.com/shopspring/decimal"
)

// Service exposes read access to wallet balances and the advisory
// balance check the transfer service runs before opening its atomic
// unit. All mutation happens inside that unit, not here.
type Service interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error)

	// ValidateBalance fails fast with ErrInvalidAmount or
	// ErrInsufficientBalance. It is advisory: the conditional debit
	// inside the transfer unit re-applies the check under isolation.
	ValidateBalance(ctx context.Context, userID uint, amount decimal.Decimal) error

	// Invalidate drops cached state for the given users after their
	// balances changed.
	Invalidate(ctx context.Context, userIDs ...uint)
}
