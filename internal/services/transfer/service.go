// Package transfer implements the balance-transfer core: validation,
// the all-or-nothing debit/credit/ledger unit, and history reads.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainerrors "paywave/internal/errors"
	"paywave/internal/models"
	"paywave/internal/repositories"
	"paywave/internal/repositories/cache"
	"paywave/internal/services/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// HistoryLimit caps the transaction history snapshot.
	HistoryLimit = 50

	// DefaultStoreTimeout bounds the atomic unit; past it the transfer
	// fails as StoreUnavailable.
	DefaultStoreTimeout = 5 * time.Second

	defaultDescription = "Money transfer"
	historyCacheTTL    = 30 * time.Second
)

type service struct {
	users     repositories.UserRepository
	store     repositories.WalletRepository
	payments  repositories.PaymentRepository
	walletSvc wallet.Service
	cache     *cache.Service
	timeout   time.Duration
}

// NewService creates a transfer service. cacheSvc may be nil; a zero
// timeout falls back to DefaultStoreTimeout.
func NewService(
	users repositories.UserRepository,
	store repositories.WalletRepository,
	payments repositories.PaymentRepository,
	walletSvc wallet.Service,
	cacheSvc *cache.Service,
	timeout time.Duration,
) Service {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &service{
		users:     users,
		store:     store,
		payments:  payments,
		walletSvc: walletSvc,
		cache:     cacheSvc,
		timeout:   timeout,
	}
}

func (s *service) Transfer(ctx context.Context, senderAuthUID, recipientPhone string, amount decimal.Decimal, description string) (*models.Payment, error) {
	sender, err := s.users.GetByAuthUID(ctx, senderAuthUID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domainerrors.ErrSenderNotFound
		}
		return nil, fmt.Errorf("failed to resolve sender: %w", err)
	}
	if sender.Wallet == nil {
		return nil, domainerrors.ErrSenderNotFound
	}

	recipient, err := s.users.GetByPhone(ctx, recipientPhone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domainerrors.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to resolve recipient: %w", err)
	}
	if recipient.Wallet == nil {
		return nil, domainerrors.ErrRecipientNotFound
	}

	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}
	if sender.ID == recipient.ID {
		return nil, domainerrors.ErrSelfTransfer
	}

	// Advisory pre-check: fail fast before opening the unit. The
	// conditional debit below re-applies the check under isolation, so
	// a concurrent drain between here and the commit still fails clean.
	if err := s.walletSvc.ValidateBalance(ctx, sender.ID, amount); err != nil {
		return nil, err
	}

	if description == "" {
		description = defaultDescription
	}
	payment := &models.Payment{
		ReferenceID:  uuid.NewString(),
		FromUserID:   sender.ID,
		ToUserID:     recipient.ID,
		FromWalletID: sender.Wallet.ID,
		ToWalletID:   recipient.Wallet.ID,
		Amount:       amount,
		Description:  description,
		Status:       models.PaymentStatusPending,
	}

	// The unit runs to completion once started; caller cancellation
	// does not abandon it mid-flight. Only the store timeout bounds it.
	unitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err = s.store.ExecuteInTransaction(unitCtx, func(tx repositories.WalletRepository) error {
		// Lock both wallets in ascending-ID order so opposing transfers
		// cannot deadlock.
		first, second := sender.Wallet.ID, recipient.Wallet.ID
		if first > second {
			first, second = second, first
		}
		if _, err := tx.LockByID(unitCtx, first); err != nil {
			return err
		}
		if _, err := tx.LockByID(unitCtx, second); err != nil {
			return err
		}

		if err := tx.ConditionalDebit(unitCtx, sender.Wallet.ID, amount); err != nil {
			return err
		}
		if err := tx.Credit(unitCtx, recipient.Wallet.ID, amount); err != nil {
			return err
		}

		payment.Status = models.PaymentStatusCompleted
		return tx.CreatePayment(unitCtx, payment)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"from_user_id": sender.ID,
			"to_user_id":   recipient.ID,
			"amount":       amount.String(),
			"error":        err.Error(),
		}).Error("transfer failed")
		return nil, s.mapStoreError(err)
	}

	s.walletSvc.Invalidate(ctx, sender.ID, recipient.ID)

	logrus.WithFields(logrus.Fields{
		"reference_id": payment.ReferenceID,
		"from_user_id": sender.ID,
		"to_user_id":   recipient.ID,
		"amount":       amount.String(),
	}).Info("transfer completed")

	payment.FromUser = sender
	payment.ToUser = recipient
	return payment, nil
}

// mapStoreError translates unit failures into the domain taxonomy. The
// unit rolled back before this runs, so every branch reports a state
// that left no partial effects.
func (s *service) mapStoreError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return domainerrors.ErrInsufficientBalance
	case errors.Is(err, repositories.ErrWalletNotFound):
		return domainerrors.ErrWalletNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.ErrStoreUnavailable
	default:
		return fmt.Errorf("transfer unit failed: %w", err)
	}
}

func (s *service) ListTransactions(ctx context.Context, userID uint) ([]models.PaymentView, error) {
	key := cache.HistoryKey(userID)
	if s.cache != nil {
		var cached []models.PaymentView
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	payments, err := s.payments.ListByUser(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	views := make([]models.PaymentView, 0, len(payments))
	for i := range payments {
		views = append(views, payments[i].View())
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, key, views, historyCacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache transaction history")
		}
	}
	return views, nil
}
