package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultTTL = 24 * 7 * time.Hour

type sessionClaims struct {
	DNI  string `json:"dni"`
	Role Role   `json:"role"`
	jwt.RegisteredClaims
}

// TokenChecker validates HS256 session tokens. The subject claim holds the
// user id.
type TokenChecker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenChecker(secret string, ttl time.Duration) *TokenChecker {
	return &TokenChecker{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *TokenChecker) SessionFor(token string) (*Session, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := &sessionClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	// tokens without exp would never expire
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}
	if claims.Subject == "" || !claims.Role.IsValid() {
		return nil, fmt.Errorf("%w: incomplete claims", ErrInvalidToken)
	}

	return &Session{
		ID:   claims.Subject,
		DNI:  claims.DNI,
		Role: claims.Role,
	}, nil
}

// Issue signs a token for session, valid for the checker's ttl.
func (c *TokenChecker) Issue(session Session) (string, error) {
	now := c.now()
	claims := sessionClaims{
		DNI:  session.DNI,
		Role: session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}
