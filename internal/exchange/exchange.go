// Package exchange implements the identity exchange: verify a third-party
// identity assertion, reconcile it against the user directory, and mint a
// session token.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osdatum/server/internal/identity"
	"github.com/osdatum/server/osdatum/users"
)

// Exchange verifies the assertion, looks up (or, in register mode,
// provisions) the user record for its email, and issues a session token.
//
// Re-registering an existing email is an idempotent success for both modes:
// the record is left untouched and a fresh token is issued.
func (s *Service) Exchange(ctx context.Context, assertionToken, mode string) (*Result, error) {
	claims, err := s.verify(ctx, assertionToken)
	if err != nil {
		return nil, err
	}

	user, err := s.reconcile(ctx, claims, mode)
	if err != nil {
		return nil, err
	}

	// the token binds the provider subject id, not the internal record id,
	// matching what downstream API consumers key on
	token, err := s.tokens.Issue(claims.Subject, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("exchange: minting session token: %w", err)
	}

	s.logger.Info("session token issued",
		slog.String("user_id", user.ID),
		slog.String("subject", claims.Subject),
		slog.String("mode", mode),
	)

	return &Result{
		Token:     token,
		ExpiresIn: s.tokens.TTLSeconds(),
		User:      user,
	}, nil
}

// verify checks the assertion with the identity provider and validates that
// the claims carry everything the exchange depends on. Provider timeouts are
// internal faults, not authentication failures.
func (s *Service) verify(ctx context.Context, assertionToken string) (*identity.Claims, error) {
	vctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	claims, err := s.verifier.Verify(vctx, assertionToken)
	if err != nil {
		if vctx.Err() != nil {
			return nil, fmt.Errorf("exchange: verifying assertion: %w", vctx.Err())
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}

	if err := claims.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}

	return claims, nil
}

// reconcile resolves the claims to a directory record. Email is the sole
// join key; the provider subject id is stored but never used for lookup here.
func (s *Service) reconcile(ctx context.Context, claims *identity.Claims, mode string) (*users.User, error) {
	lctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	user, err := s.directory.FindByEmail(lctx, claims.Email)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("exchange: directory lookup: %w", err)
	}

	if mode != ModeRegister {
		return nil, ErrUnregisteredUser
	}

	return s.provision(ctx, claims)
}

// provision inserts a new user record. If a concurrent registration for the
// same email wins the race, the insert reports a conflict and the lookup is
// re-run exactly once.
func (s *Service) provision(ctx context.Context, claims *identity.Claims) (*users.User, error) {
	pctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	user, err := s.directory.Create(pctx, users.NewUser{
		Email:             claims.Email,
		Name:              claims.Name,
		PictureURL:        claims.Picture,
		ProviderSubjectID: claims.Subject,
	})

	if err == nil {
		s.logger.Info("user provisioned",
			slog.String("user_id", user.ID),
			slog.String("subject", claims.Subject),
		)

		return user, nil
	}

	if errors.Is(err, users.ErrConflict) {
		existing, lookupErr := s.directory.FindByEmail(pctx, claims.Email)
		if lookupErr != nil {
			return nil, fmt.Errorf("exchange: lookup after insert conflict: %w", lookupErr)
		}

		return existing, nil
	}

	return nil, fmt.Errorf("exchange: provisioning user: %w", err)
}
