package task

import (
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/user"
	"time"
)

type ID int64

type Task struct {
	ID          ID
	CreatedBy   user.ID
	Title       string
	Description c.Optional[string]
	CreatedAt   time.Time
}
