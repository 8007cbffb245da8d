// Package wallet serves balances cache-first over the wallet store.
package wallet

import (
	"context"
	"errors"
	"fmt"

	domainerrors "paywave/internal/errors"
	"paywave/internal/models"
	"paywave/internal/repositories"
	"paywave/internal/repositories/cache"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type service struct {
	repo    repositories.WalletRepository
	cache   *cache.Service
	metrics MetricsCollector
}

// NewService creates a wallet service. cache and metrics may be nil.
func NewService(repo repositories.WalletRepository, cacheSvc *cache.Service, metrics MetricsCollector) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &service{repo: repo, cache: cacheSvc, metrics: metrics}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	key := cache.WalletKey(userID)
	if s.cache != nil {
		var cached models.Wallet
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			s.metrics.RecordCacheHit(key)
			return &cached, nil
		}
		s.metrics.RecordCacheMiss(key)
	}

	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		s.metrics.RecordError("get_wallet", "store")
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, wallet); err != nil {
			logrus.WithError(err).Warn("failed to cache wallet")
		}
	}
	return wallet, nil
}

func (s *service) GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

func (s *service) ValidateBalance(ctx context.Context, userID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerrors.ErrInvalidAmount
	}
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return err
	}
	if wallet.Balance.LessThan(amount) {
		return domainerrors.ErrInsufficientBalance
	}
	return nil
}

func (s *service) Invalidate(ctx context.Context, userIDs ...uint) {
	if s.cache == nil {
		return
	}
	for _, id := range userIDs {
		if err := s.cache.InvalidateUser(ctx, id); err != nil {
			logrus.WithError(err).WithField("user_id", id).Warn("failed to invalidate wallet cache")
		}
	}
}
