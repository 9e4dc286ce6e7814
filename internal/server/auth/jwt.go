// Package auth issues and parses the session tokens handed out after a
// successful proof verification.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "zkauth"

// Claims are the registered JWT claims of a session token. Subject holds the
// authenticated identity and ID a random token id.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 session token for identity.
func GenerateToken(identity, tokenID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})
	return token.SignedString(secretKey)
}

// GetIdentityFromToken validates the token and returns its subject.
// Expired tokens yield common.ErrTokenExpired, every other failure
// common.ErrInvalidToken.
func GetIdentityFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
