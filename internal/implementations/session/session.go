package session

import (
	"errors"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/user"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256-signed session tokens. The signing secret is
// process-wide configuration, construction fails fast when it is absent.
type JWT struct {
	secret        []byte
	validDuration time.Duration
}

func NewJWT(secret string, validDuration time.Duration) *JWT {
	if secret == "" {
		panic(e.NewInvalidStateError("session token secret must not be empty"))
	}
	return &JWT{
		secret:        []byte(secret),
		validDuration: validDuration,
	}
}

func (m *JWT) IssueToken(u user.User, at time.Time) (token user.SessionToken, err error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: int64(u.ID),
		Email:  string(u.Email),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(at),
			ExpiresAt: jwt.NewNumericDate(at.Add(m.validDuration)),
		},
	}).SignedString(m.secret)
	if err != nil {
		return token, err
	}
	return user.SessionToken(signed), nil
}

func (m *JWT) VerifyToken(token user.SessionToken) (sessionClaims user.SessionClaims, err error) {
	parsed, err := jwt.ParseWithClaims(string(token), &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, user.ErrInvalidSessionToken
		}
		return m.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return sessionClaims, user.ErrSessionTokenExpired
	}
	if err != nil {
		return sessionClaims, user.ErrInvalidSessionToken
	}
	parsedClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return sessionClaims, user.ErrInvalidSessionToken
	}
	return user.SessionClaims{
		UserID: user.ID(parsedClaims.UserID),
		Email:  c.Email(parsedClaims.Email),
	}, nil
}
