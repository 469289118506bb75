package createtask

import (
	"encoding/json"
	"io"
	"net/http"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/services"
	createtask "taskhub/internal/core/services/create_task"
	"taskhub/internal/http/handlers/auth"
	"taskhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createtask.Input, createtask.Result]
}

func New(
	service services.Service[createtask.Input, createtask.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 512)),
		validation.Field(&i.Description, validation.Length(0, 4096)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := createtask.Input{Title: input.Title}
	if input.Description != nil {
		serviceInput.Description = c.NewOptional(*input.Description, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if auth.IsUnauthenticated(err) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	createdTask := response.Task{}
	createdTask.FromDomainTask(result.Task)
	response.Render(rw, createdTask, http.StatusCreated)
}
