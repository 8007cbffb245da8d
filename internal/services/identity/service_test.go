package identity

import (
	"context"
	"testing"
	"time"

	domainerrors "paywave/internal/errors"
	"paywave/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_Roundtrip(t *testing.T) {
	svc := NewService("test-secret")

	token, err := svc.Issue("uid-alice", time.Minute)
	require.NoError(t, err)

	authUID, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-alice", authUID)
}

func TestVerify_Rejects(t *testing.T) {
	svc := NewService("test-secret")

	expired, err := svc.Issue("uid-alice", -time.Minute)
	require.NoError(t, err)

	wrongSecret, err := NewService("other-secret").Issue("uid-alice", time.Minute)
	require.NoError(t, err)

	// alg=none must fail the signing-method check.
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, models.UserClaims{AuthUID: "uid-alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	missingUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"expired", expired},
		{"wrong secret", wrongSecret},
		{"none algorithm", noneToken},
		{"missing auth uid", missingUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}
