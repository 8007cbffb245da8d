package user

import (
	"context"
	"errors"
	"testing"

	domainerrors "paywave/internal/errors"
	"paywave/internal/models"
	"paywave/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byAuthUID   map[string]*models.User
	nextID      uint
	createErr   error
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byAuthUID: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateWithWallet(_ context.Context, u *models.User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byAuthUID[u.AuthUID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.nextID++
	u.ID = f.nextID
	if u.Wallet != nil {
		u.Wallet.ID = f.nextID + 100
		u.Wallet.UserID = u.ID
	}
	f.byAuthUID[u.AuthUID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.byAuthUID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByAuthUID(_ context.Context, authUID string) (*models.User, error) {
	if u, ok := f.byAuthUID[authUID]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range f.byAuthUID {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func validInput() models.CreateUserInput {
	return models.CreateUserInput{
		Name:  "Alice",
		Phone: "+15550001",
		Email: "alice@example.com",
	}
}

func TestEnsureUser_CreatesWithStartingBalance(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, DefaultStartingBalance)

	u, created, err := svc.EnsureUser(context.Background(), "uid-alice", validInput())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "uid-alice", u.AuthUID)
	require.NotNil(t, u.Wallet)
	assert.True(t, u.Wallet.Balance.Equal(decimal.NewFromInt(100)))
}

func TestEnsureUser_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, DefaultStartingBalance)

	first, created, err := svc.EnsureUser(context.Background(), "uid-alice", validInput())
	require.NoError(t, err)
	require.True(t, created)

	// Simulate spending so a second provision call would be observable
	// if it re-seeded the wallet.
	first.Wallet.Balance = decimal.NewFromInt(10)

	second, created, err := svc.EnsureUser(context.Background(), "uid-alice", validInput())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Wallet.Balance.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, repo.createCalls)
}

func TestEnsureUser_ConcurrentCreateLoses(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, DefaultStartingBalance)

	// A racing request provisioned the identity between our lookup and
	// insert; the unique index rejects the insert and we re-read.
	winner := &models.User{ID: 7, AuthUID: "uid-alice", Wallet: &models.Wallet{ID: 107, UserID: 7, Balance: DefaultStartingBalance}}
	repo.createErr = errors.New("duplicate key value violates unique constraint")

	svcImpl := svc.(*service)
	repoWithRace := &racingRepo{fakeUserRepo: repo, winner: winner}
	svcImpl.repo = repoWithRace

	u, created, err := svc.EnsureUser(context.Background(), "uid-alice", validInput())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(7), u.ID)
}

// racingRepo reports not-found on the first lookup, then serves the
// winner's row, emulating a concurrent insert between lookup and create.
type racingRepo struct {
	*fakeUserRepo
	winner  *models.User
	lookups int
}

func (r *racingRepo) GetByAuthUID(_ context.Context, authUID string) (*models.User, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, repositories.ErrUserNotFound
	}
	return r.winner, nil
}

func TestEnsureUser_InvalidProfile(t *testing.T) {
	tests := []struct {
		name  string
		input models.CreateUserInput
	}{
		{"missing name", models.CreateUserInput{Phone: "+15550001", Email: "a@example.com"}},
		{"missing phone", models.CreateUserInput{Name: "Alice", Email: "a@example.com"}},
		{"bad email", models.CreateUserInput{Name: "Alice", Phone: "+15550001", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewService(repo, DefaultStartingBalance)

			_, _, err := svc.EnsureUser(context.Background(), "uid-alice", tt.input)
			require.Error(t, err)
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

func TestEnsureUser_EmptyAuthUID(t *testing.T) {
	svc := NewService(newFakeUserRepo(), DefaultStartingBalance)

	_, _, err := svc.EnsureUser(context.Background(), "", validInput())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestGetByAuthUID_NotFound(t *testing.T) {
	svc := NewService(newFakeUserRepo(), DefaultStartingBalance)

	_, err := svc.GetByAuthUID(context.Background(), "uid-ghost")
	assert.ErrorIs(t, err, domainerrors.ErrSenderNotFound)
}
