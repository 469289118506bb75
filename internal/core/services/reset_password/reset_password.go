package resetpassword

import (
	"context"
	"errors"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/logging"
	uow "taskhub/internal/core/domain/unit_of_work"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"time"
)

type Input struct {
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByPasswordResetToken(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidPasswordResetToken) {
		s.log.Info(ctx, "Password reset attempted with unknown token.")
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	if u.PasswordResetExpiresAt.IsPresent && !s.now().Before(u.PasswordResetExpiresAt.Value) {
		// Clear the expired token so it cannot be retried.
		if err := uow.Users().ClearPasswordResetToken(ctx, u.ID); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
			return result, err
		}
		if err := uow.Commit(ctx); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
			return result, err
		}
		s.log.Info(
			ctx,
			"Password reset attempted with expired token.",
			logging.Entry("userID", u.ID),
		)
		return result, user.ErrPasswordResetTokenExpired
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	// Compare-and-clear keyed by the exact token value, a concurrent
	// reset with the same token fails here.
	err = uow.Users().ConsumePasswordResetToken(ctx, input.Token, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidPasswordResetToken) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
