package auth

// TestChecker resolves tokens from a fixed map, for tests and local runs.
type TestChecker struct {
	Sessions map[string]*Session
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		Sessions: map[string]*Session{},
	}
}

func (c *TestChecker) SessionFor(token string) (*Session, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if session, ok := c.Sessions[token]; ok {
		return session, nil
	}
	return nil, ErrInvalidToken
}
