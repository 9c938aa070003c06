package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dpetrovs/zkpauth/internal/common"
)

// generateSessionToken signs an HS256 JWT bound to a session: jti carries
// the session id and sub the user it authenticates.
func generateSessionToken(sessionID, userID string, secret []byte, validity time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       sessionID,
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken verifies the signature and expiry of a session token
// and returns the session and user ids it was issued for. Any failure
// comes back as common.ErrInvalidToken.
func ParseSessionToken(tokenString string, secret []byte) (sessionID, userID string, err error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.ID, claims.Subject, nil
}
