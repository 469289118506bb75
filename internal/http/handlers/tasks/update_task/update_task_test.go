package updatetask

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	c "taskhub/internal/core/domain/common"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/domain/user"
	service "taskhub/internal/core/services/update_task"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func newStubService() *stubService {
	return &stubService{}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Task = task.Task{
		ID:        input.TaskID,
		CreatedBy: user.ID(1),
		Title:     "Test task",
		CreatedAt: time.Date(2020, 1, 1, 1, 1, 1, 0, time.UTC),
	}
	if input.DoTitleUpdate {
		result.Task.Title = input.Title
	}
	if input.DoDescriptionUpdate {
		result.Task.Description = input.Description
	}
	return result, nil
}

func TestUpdateTaskHandler(t *testing.T) {
	cases := []struct {
		id             string
		taskID         string
		body           string
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "title-updated",
			taskID:         "1",
			body:           `{"title": "Updated title"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				TaskID:        task.ID(1),
				DoTitleUpdate: true,
				Title:         "Updated title",
			},
		},
		{
			id:             "description-updated",
			taskID:         "1",
			body:           `{"description": "New description"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				TaskID:              task.ID(1),
				DoDescriptionUpdate: true,
				Description:         c.NewOptional("New description", true),
			},
		},
		{
			id:             "empty-description-clears-it",
			taskID:         "1",
			body:           `{"description": ""}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				TaskID:              task.ID(1),
				DoDescriptionUpdate: true,
				Description:         c.NewOptional("", false),
			},
		},
		{
			id:             "null-description-leaves-it-unchanged",
			taskID:         "1",
			body:           `{"title": "Updated title", "description": null}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				TaskID:        task.ID(1),
				DoTitleUpdate: true,
				Title:         "Updated title",
			},
		},
		{
			id:             "invalid-task-id",
			taskID:         "not-a-number",
			body:           `{"title": "Updated title"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "empty-title",
			taskID:         "1",
			body:           `{"title": ""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "task-does-not-exist",
			taskID:         "42",
			body:           `{"title": "Updated title"}`,
			serviceError:   task.ErrTaskDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "missing-token",
			taskID:         "1",
			body:           `{"title": "Updated title"}`,
			serviceError:   user.ErrInvalidSessionToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("PATCH", "/tasks/"+testcase.taskID, strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("taskID", testcase.taskID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			service := newStubService()
			service.err = testcase.serviceError
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
