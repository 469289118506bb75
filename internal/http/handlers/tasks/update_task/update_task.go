package updatetask

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/task"
	"taskhub/internal/core/services"
	updatetask "taskhub/internal/core/services/update_task"
	"taskhub/internal/http/handlers/auth"
	"taskhub/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updatetask.Input, updatetask.Result]
}

func New(
	service services.Service[updatetask.Input, updatetask.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.NilOrNotEmpty, validation.Length(1, 512)),
		validation.Field(&i.Description, validation.Length(0, 4096)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawTaskID := chi.URLParam(r, "taskID")
	taskID, err := strconv.ParseInt(rawTaskID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid task ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := updatetask.Input{TaskID: task.ID(taskID)}
	if input.Title != nil {
		serviceInput.DoTitleUpdate = true
		serviceInput.Title = *input.Title
	}
	if input.Description != nil {
		// An empty string clears the description. A null or absent
		// description leaves it unchanged.
		serviceInput.DoDescriptionUpdate = true
		serviceInput.Description = c.NewOptional(*input.Description, *input.Description != "")
	}

	result, err := h.service.Run(r.Context(), serviceInput)
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

	updatedTask := response.Task{}
	updatedTask.FromDomainTask(result.Task)
	response.Render(rw, updatedTask, http.StatusOK)
}
