package exchange

import "errors"

var (
	// the identity assertion failed verification: expired, malformed, bad
	// signature, wrong audience, or missing required claims
	ErrInvalidAssertion = errors.New("exchange: invalid identity assertion")

	// login attempted for an email with no directory record
	ErrUnregisteredUser = errors.New("exchange: email is not registered")
)
