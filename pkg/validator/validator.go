package validator

import (
	validator "github.com/go-playground/validator/v10"
)

// Validator validates structs using `validate` tags.
type Validator interface {
	Validate(interface{}) error
}

type structValidator struct {
	v *validator.Validate
}

func New() Validator {
	return &structValidator{v: validator.New()}
}

func (s *structValidator) Validate(obj interface{}) error {
	return s.v.Struct(obj)
}
