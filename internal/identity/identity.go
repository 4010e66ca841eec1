// Package identity verifies third-party identity assertions (OIDC ID tokens)
// and exposes the claims the rest of the server is allowed to trust.
package identity

import (
	"context"
	"fmt"
)

// Claims carries the fields extracted from a verified identity assertion.
type Claims struct {
	Subject string `json:"sub"`     // stable provider-assigned identifier
	Email   string `json:"email"`   // join key for the user directory
	Name    string `json:"name"`    // display name, copied at provisioning time
	Picture string `json:"picture"` // avatar URL, copied at provisioning time
}

// Verifier checks an identity assertion against the provider and returns
// its claims. Implementations must reject expired, malformed, or
// wrong-audience tokens.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}

// Validate checks that a verified assertion carries the claims the exchange
// depends on. A provider response missing them must not propagate silently.
func (c *Claims) Validate() error {
	if c.Subject == "" {
		return fmt.Errorf("identity: assertion is missing the subject claim")
	}

	if c.Email == "" {
		return fmt.Errorf("identity: assertion is missing the email claim")
	}

	return nil
}
