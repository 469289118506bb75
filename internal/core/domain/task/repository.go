package task

import (
	"context"
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	CreatedBy   user.ID
	Title       string
	Description c.Optional[string]
	CreatedAt   time.Time
}

type UpdateInput struct {
	ID                  ID
	CreatedBy           user.ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         c.Optional[string]
}

type ReadOptions struct {
	CreatedByEquals user.ID
}

// TaskRepository operations other than Create are owner-scoped: the
// CreatedBy field is part of every lookup.
type TaskRepository interface {
	Create(ctx context.Context, input CreateInput) (Task, error)
	Read(ctx context.Context, options ReadOptions) ([]Task, error)
	Update(ctx context.Context, input UpdateInput) (Task, error)
	Delete(ctx context.Context, id ID, createdBy user.ID) error
}
