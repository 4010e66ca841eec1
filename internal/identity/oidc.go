package identity

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier validates ID tokens against an OpenID Connect provider's
// published keys. It is constructed once at startup and injected into the
// exchange service.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the provider at issuerURL and prepares a
// verifier bound to the given audience.
func NewOIDCVerifier(ctx context.Context, issuerURL, audience string) (*OIDCVerifier, error) {
	if issuerURL == "" {
		return nil, fmt.Errorf("identity: issuer URL is required")
	}

	if audience == "" {
		return nil, fmt.Errorf("identity: audience is required")
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("identity: discovering OIDC provider: %w", err)
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: audience,
	})

	return &OIDCVerifier{verifier: verifier}, nil
}

// Verify checks the token's signature, expiry, issuer, and audience, then
// extracts the claims the exchange needs.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("identity: verifying ID token: %w", err)
	}

	var payload struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	if err := idToken.Claims(&payload); err != nil {
		return nil, fmt.Errorf("identity: parsing ID token claims: %w", err)
	}

	return &Claims{
		Subject: idToken.Subject,
		Email:   payload.Email,
		Name:    payload.Name,
		Picture: payload.Picture,
	}, nil
}
