package forms

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one failed constraint on one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"type"`
}

// Validate runs the struct's validate tags and returns one error per failed
// field, nil when the form is valid. Messages are user-facing.
func Validate(obj any) []FieldError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: errorMsg(fe),
			Tag:     fe.Tag(),
		})
	}
	return fieldErrors
}

// Messages indexes field errors by field name for template lookups. Only the
// first error per field is kept.
func Messages(fieldErrors []FieldError) map[string]string {
	if len(fieldErrors) == 0 {
		return nil
	}
	byField := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		if _, seen := byField[fe.Field]; !seen {
			byField[fe.Field] = fe.Message
		}
	}
	return byField
}

func errorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "numeric":
		return "Solo debe contener números."
	case "oneof":
		return "Valor no válido."
	case "gte":
		return "Debe ser mayor o igual a " + fe.Param() + "."
	case "max":
		return "Valor demasiado largo."
	default:
		return "Valor no válido."
	}
}
