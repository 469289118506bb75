package response

import (
	"taskhub/internal/core/domain/task"
	"time"
)

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Task) FromDomainTask(dt task.Task) {
	t.ID = int64(dt.ID)
	t.Title = dt.Title
	if dt.Description.IsPresent {
		description := dt.Description.Value
		t.Description = &description
	}
	t.CreatedAt = dt.CreatedAt
}

func Tasks(dts []task.Task) []Task {
	tasks := make([]Task, len(dts))
	for ix, dt := range dts {
		tasks[ix].FromDomainTask(dt)
	}
	return tasks
}
