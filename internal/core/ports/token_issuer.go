package ports

// TokenIssuer signs and verifies session tokens bound to a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Verify returns the user id encoded in a valid, unexpired token and
	// domain.ErrSessionInvalid otherwise.
	Verify(token string) (string, error)
}
