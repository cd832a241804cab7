package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json names so clients see the wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs struct validation and maps failures into a domain error
// carrying a field -> rule detail map.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid request payload", nil)
	}
	details := make(map[string]any, len(invalid))
	for _, fieldErr := range invalid {
		details[fieldErr.Field()] = fieldErr.Tag()
	}
	return apperrors.NewValidationError("invalid request payload", details)
}
