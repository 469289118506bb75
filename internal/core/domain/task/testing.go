package task

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"taskhub/internal/core/domain/user"
)

type FakeTaskRepository struct {
	Tasks       []Task
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeTaskRepository() *FakeTaskRepository {
	return &FakeTaskRepository{Tasks: make([]Task, 0, 10)}
}

func (r *FakeTaskRepository) Create(ctx context.Context, input CreateInput) (t Task, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create task %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, t := range r.Tasks {
		maxID = t.ID
	}
	t = Task{
		ID:          maxID + 1,
		CreatedBy:   input.CreatedBy,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   input.CreatedAt,
	}
	r.Tasks = append(r.Tasks, t)
	return t, nil
}

func (r *FakeTaskRepository) Read(ctx context.Context, options ReadOptions) ([]Task, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read tasks")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	tasks := make([]Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		if t.CreatedBy == options.CreatedByEquals {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *FakeTaskRepository) Update(ctx context.Context, input UpdateInput) (t Task, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not update task %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tasks {
		if t.ID == input.ID && t.CreatedBy == input.CreatedBy {
			if input.DoTitleUpdate {
				r.Tasks[ix].Title = input.Title
			}
			if input.DoDescriptionUpdate {
				r.Tasks[ix].Description = input.Description
			}
			return r.Tasks[ix], nil
		}
	}
	return t, ErrTaskDoesNotExist
}

func (r *FakeTaskRepository) Delete(ctx context.Context, id ID, createdBy user.ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete task %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tasks {
		if t.ID == id && t.CreatedBy == createdBy {
			r.Tasks = append(r.Tasks[:ix], r.Tasks[ix+1:]...)
			return nil
		}
	}
	return ErrTaskDoesNotExist
}
