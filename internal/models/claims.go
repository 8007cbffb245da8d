package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims the identity provider signs. AuthUID is
// the external identity, not a row ID; user lookup happens per request.
type UserClaims struct {
	jwt.RegisteredClaims
	AuthUID string `json:"auth_uid"`
}
