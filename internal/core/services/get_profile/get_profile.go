package getprofile

import (
	"context"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"taskhub/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct{}

func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	if err := input.User.Validate(); err != nil {
		return Result{}, e.NewInvalidStateError("authenticated user is not valid")
	}
	return Result{User: input.User}, nil
}
