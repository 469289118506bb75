package auth

import (
	"context"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	sessionManager user.SessionManager
	userRepository user.UserRepository
	inner          services.Service[T, S]
}

// WithAuthentication verifies the bearer token from the request context and
// resolves the authenticated user before running the inner service.
func WithAuthentication[T Input, S any](
	sessionManager user.SessionManager,
	userRepository user.UserRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionManager == nil {
		panic(e.NewNilArgumentError("sessionManager"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		sessionManager: sessionManager,
		userRepository: userRepository,
		inner:          inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	if !ok {
		return result, user.ErrInvalidSessionToken
	}
	claims, err := s.sessionManager.VerifyToken(authToken)
	if err != nil {
		return result, err
	}
	u, err := s.userRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}
