// Package auth issues and validates the bearer tokens handed out at
// registration. Tokens are HS256-signed JWTs carrying the user ID as the
// subject claim; issuer and audience are pinned so tokens from other
// deployments are rejected.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired, signed
// with the wrong key, or carries an unexpected issuer or audience.
var ErrInvalidToken = errors.New("invalid token")

// Manager signs and verifies tokens with a single shared secret.
type Manager struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is stamped as the iss claim and required on verification.
	Issuer string
	// Audience is stamped as the aud claim and required on verification.
	Audience string
	// TTL is the token lifetime.
	TTL time.Duration
}

// NewManager constructs a Manager.
func NewManager(secret, issuer, audience string, ttl time.Duration) *Manager {
	return &Manager{Secret: []byte(secret), Issuer: issuer, Audience: audience, TTL: ttl}
}

// Issue returns a signed token whose subject is userID.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    m.Issuer,
		Audience:  jwt.ClaimStrings{m.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
	})
	return token.SignedString(m.Secret)
}

// Parse verifies tokenString and returns the user ID it was issued for.
// Any verification failure is reported as ErrInvalidToken.
func (m *Manager) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.Issuer),
		jwt.WithAudience(m.Audience),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
