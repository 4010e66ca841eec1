package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents session token claims
type Claims struct {
	UserID string `json:"userId"` // identity provider subject id
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
