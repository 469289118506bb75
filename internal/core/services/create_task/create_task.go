package createtask

import (
	"context"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/logging"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	"taskhub/internal/core/services/auth"
	"time"
)

type Input struct {
	User        user.User
	Title       string
	Description c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Task task.Task
}

type service struct {
	log            logging.Logger
	taskRepository task.TaskRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	taskRepository task.TaskRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if taskRepository == nil {
		panic(e.NewNilArgumentError("taskRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		taskRepository: taskRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdTask, err := s.taskRepository.Create(ctx, task.CreateInput{
		CreatedBy:   input.User.ID,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"New task has been created.",
		logging.Entry("taskID", createdTask.ID),
		logging.Entry("userID", input.User.ID),
	)
	return Result{Task: createdTask}, nil
}
