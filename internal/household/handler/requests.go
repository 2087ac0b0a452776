package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "memberreg/pkg/domain-errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetFieldRequest sets one named field to a raw form value.
type SetFieldRequest struct {
	Field string `json:"field" validate:"required,max=64"`
	Value string `json:"value" validate:"max=4096"`
}

func (r *SetFieldRequest) Normalize() {
	r.Field = strings.TrimSpace(r.Field)
}

func (r *SetFieldRequest) Validate() error {
	return validateStruct(r)
}

// SpouseCountRequest declares how many wives the husband has.
type SpouseCountRequest struct {
	Count int `json:"count" validate:"min=1,max=4"`
}

func (r *SpouseCountRequest) Validate() error {
	return validateStruct(r)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("%s failed %s=%s", jsonName(fe.Field()), fe.Tag(), fe.Param()))
	}
	return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
