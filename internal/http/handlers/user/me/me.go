package me

import (
	"net/http"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/services"
	getprofile "taskhub/internal/core/services/get_profile"
	"taskhub/internal/http/handlers/auth"
	"taskhub/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[getprofile.Input, getprofile.Result]
}

func New(
	service services.Service[getprofile.Input, getprofile.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), getprofile.Input{})
	if auth.IsUnauthenticated(err) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, u, http.StatusOK)
}
