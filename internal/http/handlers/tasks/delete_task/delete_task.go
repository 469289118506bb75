package deletetask

import (
	"errors"
	"net/http"
	"strconv"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/services"
	deletetask "taskhub/internal/core/services/delete_task"
	"taskhub/internal/http/handlers/auth"
	"taskhub/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deletetask.Input, deletetask.Result]
}

func New(
	service services.Service[deletetask.Input, deletetask.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawTaskID := chi.URLParam(r, "taskID")
	taskID, err := strconv.ParseInt(rawTaskID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid task ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deletetask.Input{TaskID: task.ID(taskID)})
	if auth.IsUnauthenticated(err) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, task.ErrTaskDoesNotExist) {
		response.RenderNotFound(rw, "task does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
