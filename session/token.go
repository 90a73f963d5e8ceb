package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt inspects the server-issued JWT carried by the session
// and reports its expiry. The token is parsed without signature
// verification (the client holds no verification key; the service is the
// authority), so the result is a hint for anticipating server-side
// invalidation, not proof of validity.
//
// ok is false when the session carries no token, the token is not a JWT,
// or it has no exp claim.
func (s *Session) TokenExpiresAt() (expiry time.Time, ok bool) {
	if s == nil || s.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired reports whether the session's JWT expiry has passed at
// the given instant. A session without a readable expiry is never
// considered expired; the server remains the authority.
func (s *Session) TokenExpired(now time.Time) bool {
	exp, ok := s.TokenExpiresAt()
	if !ok {
		return false
	}
	return now.After(exp)
}
