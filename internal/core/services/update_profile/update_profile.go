package updateprofile

import (
	"context"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"taskhub/internal/core/services/auth"
)

type Input struct {
	User             user.User
	DoNameUpdate     bool
	Name             string
	DoPasswordUpdate bool
	NewPassword      user.RawPassword
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	update := user.UpdateUserInput{
		ID:           input.User.ID,
		DoNameUpdate: input.DoNameUpdate,
		Name:         input.Name,
	}
	if input.DoPasswordUpdate {
		passwordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
			return result, err
		}
		update.DoPasswordUpdate = true
		update.PasswordHash = passwordHash
	}

	updatedUser, err := s.userRepository.Update(ctx, update)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User profile successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	return Result{User: updatedUser}, nil
}
