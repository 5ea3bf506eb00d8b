package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// CookieSigner seals session ids into tamper-evident cookie values.
// The value only proves the id was issued by this server; the session store
// remains the authority on whether the session is still live.
type CookieSigner struct {
	secret []byte
	now    func() time.Time
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret), now: time.Now}
}

// Sign encodes the session id with the session's expiry.
func (cs *CookieSigner) Sign(session *domain.Session) (string, error) {
	if session == nil || session.ID == "" {
		return "", errors.New("sign cookie: empty session")
	}
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cs.secret)
	if err != nil {
		return "", fmt.Errorf("sign cookie: %w", err)
	}
	return signed, nil
}

// Verify returns the session id sealed in value, or domain.ErrNoActiveSession
// when the value is malformed, forged or past its expiry.
func (cs *CookieSigner) Verify(value string) (string, error) {
	if value == "" {
		return "", domain.ErrNoActiveSession
	}
	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (interface{}, error) {
		return cs.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(cs.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return "", domain.ErrNoActiveSession
	}
	return claims.SessionID, nil
}
