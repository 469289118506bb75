package deletetask

import (
	"context"
	"errors"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"taskhub/internal/core/services/auth"
)

type Input struct {
	User   user.User
	TaskID task.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	taskRepository task.TaskRepository
}

func New(
	log logging.Logger,
	taskRepository task.TaskRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if taskRepository == nil {
		panic(e.NewNilArgumentError("taskRepository"))
	}
	return &service{
		log:            log,
		taskRepository: taskRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.taskRepository.Delete(ctx, input.TaskID, input.User.ID)
	if errors.Is(err, task.ErrTaskDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(
			ctx,
			s.log,
			err,
			logging.Entry("taskID", input.TaskID),
			logging.Entry("userID", input.User.ID),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Task has been deleted.",
		logging.Entry("taskID", input.TaskID),
		logging.Entry("userID", input.User.ID),
	)
	return result, nil
}
