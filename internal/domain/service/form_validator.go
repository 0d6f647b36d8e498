package service

import "recipeme/internal/domain/entity"

// FormValidator checks submitted form input.
type FormValidator interface {
	// Validate returns the field-level errors of form, or nil when it is valid.
	Validate(form any) entity.FieldErrors
}
