package ports

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	Issue(subject string) (string, error)
	// Validate returns the token subject. Every failure mode (bad signature,
	// malformed token, expiry, missing subject) is domain.ErrInvalidToken.
	Validate(token string) (string, error)
}
