package user

import (
	c "taskhub/internal/core/domain/common"
	"time"
)

type SessionToken string

type SessionClaims struct {
	UserID ID
	Email  c.Email
}

// SessionManager issues and verifies signed, self-contained session tokens.
// Tokens are never persisted; expiry is the only invalidation mechanism.
type SessionManager interface {
	IssueToken(u User, at time.Time) (SessionToken, error)
	// VerifyToken returns ErrSessionTokenExpired for expired tokens and
	// ErrInvalidSessionToken for any other verification failure.
	VerifyToken(token SessionToken) (SessionClaims, error)
}
