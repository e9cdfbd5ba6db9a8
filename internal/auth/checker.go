package auth

import (
	"context"
	"errors"
)

var (
	ErrMissingToken = errors.New("missing session token")
	ErrInvalidToken = errors.New("invalid session token")
)

var _ Checker = (*TokenChecker)(nil)
var _ Checker = (*TestChecker)(nil)

// Checker turns a session token issued by the identity provider into the
// session it carries.
type Checker interface {
	SessionFor(token string) (*Session, error)
}

type Role string

const (
	RolePlayer Role = "player"
	RoleStaff  Role = "staff"
)

func (r Role) IsValid() bool {
	return r == RolePlayer || r == RoleStaff
}

// Session is the decoded identity of the caller.
type Session struct {
	ID   string `json:"id"`
	DNI  string `json:"dni"`
	Role Role   `json:"role"`
}

func (s *Session) IsStaff() bool {
	return s != nil && s.Role == RoleStaff
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok && session != nil
}
