package listusertasks

import (
	"context"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/task"
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
	Tasks []task.Task
}

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
	tasks, err := s.taskRepository.Read(ctx, task.ReadOptions{CreatedByEquals: input.User.ID})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}
	return Result{Tasks: tasks}, nil
}
