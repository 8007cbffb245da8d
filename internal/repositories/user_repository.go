package repositories

import (
	"context"

	"paywave/internal/models"
)

// UserRepository defines user lookup and creation. Creation persists the
// nested wallet in the same transaction so a user never exists without
// one.
type UserRepository interface {
	// CreateWithWallet inserts the user together with its seeded wallet.
	CreateWithWallet(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id uint) (*models.User, error)

	// GetByAuthUID resolves the externally-verified identity to a local
	// user, wallet included.
	GetByAuthUID(ctx context.Context, authUID string) (*models.User, error)

	// GetByPhone resolves a transfer recipient, wallet included.
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
}
