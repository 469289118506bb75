package listusertasks

import (
	"net/http"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/services"
	listusertasks "taskhub/internal/core/services/list_user_tasks"
	"taskhub/internal/http/handlers/auth"
	"taskhub/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listusertasks.Input, listusertasks.Result]
}

func New(
	service services.Service[listusertasks.Input, listusertasks.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Tasks []response.Task `json:"tasks"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listusertasks.Input{})
	if auth.IsUnauthenticated(err) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Tasks: response.Tasks(result.Tasks)}, http.StatusOK)
}
