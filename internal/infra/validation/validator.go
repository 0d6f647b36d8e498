// Package validation adapts go-playground/validator to the domain FormValidator.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"recipeme/internal/domain/entity"
	"recipeme/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator reports field errors keyed by the form field name.
type Validator struct {
	validate *validator.Validate
}

var _ service.FormValidator = (*Validator)(nil)

// New returns a Validator that names fields after their `form` tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	// maxbytes bounds the encoded length; max counts runes.
	_ = validate.RegisterValidation("maxbytes", maxBytes)

	return &Validator{validate: validate}
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// NewFormValidator exposes Validator as the domain service.
func NewFormValidator(v *Validator) service.FormValidator {
	return v
}

// Validate returns nil when form passes every rule.
func (v *Validator) Validate(form any) entity.FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := entity.FieldErrors{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors.Add("form", err.Error())

		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), message(fe))
	}

	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("Field cannot be longer than %s bytes.", fe.Param())
	case "eqfield":
		return "Passwords must match."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
