package login

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	ratelimiter "taskhub/internal/core/domain/rate_limiter"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	login "taskhub/internal/core/services/log_in"
	"taskhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service        services.Service[login.Input, login.Result]
	normalizeEmail c.EmailNormalizer
}

func New(
	service services.Service[login.Input, login.Result],
	normalizeEmail c.EmailNormalizer,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if normalizeEmail == nil {
		panic(e.NewNilArgumentError("normalizeEmail"))
	}
	return &Handler{service: service, normalizeEmail: normalizeEmail}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
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

	result, err := h.service.Run(
		r.Context(),
		login.Input{Email: h.normalizeEmail(input.Email), Password: user.RawPassword(input.Password)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, user.ErrInvalidCredentials) {
		response.RenderError(rw, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Token: string(result.Token)}, http.StatusOK)
}
