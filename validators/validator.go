package validators

import "github.com/go-playground/validator/v10"

// Validator wraps go-playground/validator for Echo's Validator interface
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs struct validation on a bound request
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
