package repositories

import (
	"context"
	"errors"

	"paywave/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUserNotFound      = errors.New("user not found")
)

// WalletRepository is the wallet store: authoritative balances plus the
// atomic mutations the transfer service composes into one unit.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(ctx context.Context, id uint) (*models.Wallet, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error)

	// LockByID reads a wallet row under FOR UPDATE. Only meaningful
	// inside ExecuteInTransaction; callers lock in ascending wallet-ID
	// order to avoid deadlock between opposing transfers.
	LockByID(ctx context.Context, id uint) (*models.Wallet, error)

	// ConditionalDebit decrements the balance in a single statement
	// guarded by balance >= amount. The guard failing under a concurrent
	// drain reports ErrInsufficientFunds; the sufficiency check and the
	// decrement are never separate operations.
	ConditionalDebit(ctx context.Context, walletID uint, amount decimal.Decimal) error
	Credit(ctx context.Context, walletID uint, amount decimal.Decimal) error

	// CreatePayment appends a ledger row within the current unit.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// ExecuteInTransaction runs fn against a repository bound to one
	// database transaction; any error rolls back every mutation fn made.
	ExecuteInTransaction(ctx context.Context, fn func(WalletRepository) error) error
}
