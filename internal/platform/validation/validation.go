// Package validation agrupa la validación de formularios previa a cualquier
// llamada al backend.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Error es un error de validación del lado cliente. Nunca llega a la red.
type Error struct {
	Message string
	Field   string
}

func (e *Error) Error() string { return e.Message }

// Mismo patrón simple que usa el formulario de dueños; no es RFC 5322.
var simpleEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return simpleEmail.MatchString(fl.Field().String())
	})
	return v
}

// Messages mapea nombre de campo (del struct) -> mensaje para el usuario.
type Messages map[string]string

// Check valida los tags `validate` de v. El primer campo que falla (en orden
// de declaración) define el mensaje.
func Check(v any, messages Messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}

	fe := ves[0]
	msg, ok := messages[fe.Field()]
	if !ok {
		msg = fe.Error()
	}
	return &Error{Message: msg, Field: fe.Field()}
}
