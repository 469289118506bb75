package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "taskhub/internal/core/domain/common"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	signup "taskhub/internal/core/services/sign_up"
	"taskhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service        services.Service[signup.Input, signup.Result]
	normalizeEmail c.EmailNormalizer
}

func New(
	service services.Service[signup.Input, signup.Result],
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
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 512)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		validation.Field(
			&i.PasswordConfirmation,
			validation.Required,
			validation.In(i.Password).Error("passwords do not match"),
		),
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
		signup.Input{
			Name:     input.Name,
			Email:    h.normalizeEmail(input.Email),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	createdUser := response.User{}
	createdUser.FromDomainUser(result.User)
	response.Render(rw, createdUser, http.StatusCreated)
}
