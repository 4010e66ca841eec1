// Package session mints and validates the application's own session tokens.
// Tokens are stateless: validity is determined purely by signature and
// expiry, there is no server-side session store.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued session token stays valid.
const DefaultTTL = time.Hour

// TokenService signs and validates session tokens with a process-wide
// secret. The secret is injected at construction time and never read from
// the environment at call sites.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// creates a token service with the given signing secret and token lifetime
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("session: signing secret must not be empty")
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token binding the user's provider subject
// id and email, expiring TTL from now.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks a session token and returns the claims it carries.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// TTLSeconds returns the token lifetime in whole seconds, as reported to
// clients in the exchange response.
func (s *TokenService) TTLSeconds() int {
	return int(s.ttl.Seconds())
}
