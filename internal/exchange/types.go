package exchange

import (
	"context"
	"log/slog"
	"time"

	"github.com/osdatum/server/internal/identity"
	"github.com/osdatum/server/internal/session"
	"github.com/osdatum/server/osdatum/users"
)

// recognized exchange modes. Any other value gets login semantics with no
// registration fallback.
const (
	ModeRegister = "register"
	ModeLogin    = "login"
)

// upper bound on each collaborator call so a stalled provider or directory
// fails the exchange instead of hanging it
const defaultOperationTimeout = 10 * time.Second

// Directory is the slice of the user directory the exchange needs.
// *users.Repository implements it.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	Create(ctx context.Context, newUser users.NewUser) (*users.User, error)
}

// Service performs the identity-to-session token exchange. It holds no
// mutable state of its own; every dependency is injected at construction.
type Service struct {
	verifier  identity.Verifier
	directory Directory
	tokens    *session.TokenService
	logger    *slog.Logger
	opTimeout time.Duration
}

// Result is returned on a successful exchange.
type Result struct {
	Token     string
	ExpiresIn int // seconds until the token expires
	User      *users.User
}

// creates an exchange service with all required dependencies
func NewService(
	verifier identity.Verifier,
	directory Directory,
	tokens *session.TokenService,
	logger *slog.Logger,
) *Service {
	return &Service{
		verifier:  verifier,
		directory: directory,
		tokens:    tokens,
		logger:    logger,
		opTimeout: defaultOperationTimeout,
	}
}
