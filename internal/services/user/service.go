// Package user provisions users and their wallets. Provisioning is an
// idempotent get-or-create keyed on the external auth UID; a wallet with
// the starting balance is seeded together with the user on first
// creation only.
package user

import (
	"context"
	"errors"
	"fmt"

	domainerrors "paywave/internal/errors"
	"paywave/internal/models"
	"paywave/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DefaultStartingBalance is the wallet seed for newly provisioned users.
var DefaultStartingBalance = decimal.NewFromInt(100)

type Service interface {
	// EnsureUser returns the user for authUID, creating it (and its
	// wallet) from the profile if it does not exist yet. The bool
	// reports whether a new user was created.
	EnsureUser(ctx context.Context, authUID string, input models.CreateUserInput) (*models.User, bool, error)

	// GetByAuthUID resolves an authenticated identity to its user.
	GetByAuthUID(ctx context.Context, authUID string) (*models.User, error)
}

type service struct {
	repo            repositories.UserRepository
	validate        *validator.Validate
	startingBalance decimal.Decimal
}

// NewService creates a provisioning service seeding wallets with
// startingBalance.
func NewService(repo repositories.UserRepository, startingBalance decimal.Decimal) Service {
	return &service{
		repo:            repo,
		validate:        validator.New(),
		startingBalance: startingBalance,
	}
}

func (s *service) EnsureUser(ctx context.Context, authUID string, input models.CreateUserInput) (*models.User, bool, error) {
	if authUID == "" {
		return nil, false, domainerrors.ErrUnauthenticated
	}

	existing, err := s.repo.GetByAuthUID(ctx, authUID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, false, fmt.Errorf("invalid profile: %w", err)
	}

	u := &models.User{
		AuthUID: authUID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Wallet:  &models.Wallet{Balance: s.startingBalance},
	}
	if err := s.repo.CreateWithWallet(ctx, u); err != nil {
		// A concurrent request may have provisioned the same identity;
		// the unique index makes the insert lose, so re-read.
		if existing, lookupErr := s.repo.GetByAuthUID(ctx, authUID); lookupErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   u.ID,
		"wallet_id": u.Wallet.ID,
		"balance":   s.startingBalance.String(),
	}).Info("user provisioned")

	return u, true, nil
}

func (s *service) GetByAuthUID(ctx context.Context, authUID string) (*models.User, error) {
	u, err := s.repo.GetByAuthUID(ctx, authUID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domainerrors.ErrSenderNotFound
		}
		return nil, err
	}
	return u, nil
}
