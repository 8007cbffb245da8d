// Package identity is the port to the external identity provider. The
// rest of the system only ever sees the stable auth UID a verified
// bearer token yields.
package identity

import (
	"context"
	"fmt"
	"time"

	domainerrors "paywave/internal/errors"
	"paywave/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Service verifies bearer tokens.
type Service interface {
	// Verify validates the token and returns the external auth UID it
	// was issued for, or ErrUnauthenticated.
	Verify(ctx context.Context, bearerToken string) (string, error)
}

// TokenIssuer mints tokens. Production tokens come from the external
// provider; this is used by tooling and tests.
type TokenIssuer interface {
	Issue(authUID string, ttl time.Duration) (string, error)
}

type jwtService struct {
	secret []byte
}

// NewService creates an HS256 token verifier.
func NewService(secret string) *jwtService {
	return &jwtService{secret: []byte(secret)}
}

func (s *jwtService) Verify(_ context.Context, bearerToken string) (string, error) {
	token, err := jwt.ParseWithClaims(bearerToken, &models.UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domainerrors.ErrUnauthenticated
	}
	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || claims.AuthUID == "" {
		return "", domainerrors.ErrUnauthenticated
	}
	return claims.AuthUID, nil
}

func (s *jwtService) Issue(authUID string, ttl time.Duration) (string, error) {
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   authUID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AuthUID: authUID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
