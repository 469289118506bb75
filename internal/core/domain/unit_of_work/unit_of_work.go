package uow

import (
	"context"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Tasks() task.TaskRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
