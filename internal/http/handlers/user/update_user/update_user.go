package updateuser

import (
	"encoding/json"
	"io"
	"net/http"
	e "taskhub/internal/core/domain/errors"
	"taskhub/internal/core/domain/user"
	"taskhub/internal/core/services"
	updateprofile "taskhub/internal/core/services/update_profile"
	"taskhub/internal/http/handlers/auth"
	"taskhub/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updateprofile.Input, updateprofile.Result]
}

func New(
	service services.Service[updateprofile.Input, updateprofile.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name                 *string `json:"name"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&i.Name, validation.NilOrNotEmpty, validation.Length(1, 512)),
		validation.Field(&i.Password, validation.NilOrNotEmpty, validation.Length(6, 256)),
	}
	if i.Password != nil {
		rules = append(rules, validation.Field(
			&i.PasswordConfirmation,
			validation.Required,
			validation.In(*i.Password).Error("passwords do not match"),
		))
	}
	return validation.ValidateStruct(&i, rules...)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if input.Name == nil && input.Password == nil {
		response.RenderError(rw, "either name or password must be provided", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := updateprofile.Input{}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = *input.Name
	}
	if input.Password != nil {
		serviceInput.DoPasswordUpdate = true
		serviceInput.NewPassword = user.RawPassword(*input.Password)
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

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, u, http.StatusOK)
}
