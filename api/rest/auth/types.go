package auth

import (
	"context"

	"github.com/osdatum/server/osdatum/users"
)

// ExchangeRequest is the identity exchange payload. Mode is deliberately not
// constrained to the two recognized values: anything other than "register"
// gets login semantics.
type ExchangeRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Mode    string `json:"mode" binding:"required"`
}

// ExchangeResponse returned after a successful exchange
type ExchangeResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
	Message   string `json:"message"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// UserFinder is the directory lookup the profile endpoint needs.
// *users.Repository implements it.
type UserFinder interface {
	FindBySubjectID(ctx context.Context, subjectID string) (*users.User, error)
}
