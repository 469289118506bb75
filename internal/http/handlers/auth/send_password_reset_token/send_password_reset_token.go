package sendpasswordresettoken

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
	sendpasswordresettoken "taskhub/internal/core/services/send_password_reset_token"
	"taskhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service        services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	normalizeEmail c.EmailNormalizer
}

func New(
	service services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result],
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
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
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

	_, err := h.service.Run(
		r.Context(),
		sendpasswordresettoken.Input{Email: h.normalizeEmail(input.Email)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderNotFound(rw, "user does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
