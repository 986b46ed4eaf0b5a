// Package validation checks request structs with go-playground/validator and
// reports field-level violations as domain validation errors.
package validation

import (
	"reflect"
	"strings"

	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a configured validator.Validate instance.
type Validator struct {
	validate *validator.Validate
}

var _ service.Validator = (*Validator)(nil)

// New builds a Validator that names fields after their json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// NewService exposes the Validator through the domain interface for dependency injection.
func NewService() service.Validator {
	return New()
}

// Struct validates s and returns ErrValidationFailed with one violation per failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fe.Field(),
			Message: message(fe),
			Tag:     fe.Tag(),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid id"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}

		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters long"
		}

		return "must be at most " + fe.Param()
	default:
		return "invalid value"
	}
}
