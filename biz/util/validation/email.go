package validation

import "github.com/go-playground/validator/v10"

// EmailValidator reports whether an email address is well formed.
// Implementations may panic on internal failure; callers own the guard.
type EmailValidator interface {
	IsValid(email string) bool
}

type emailValidator struct {
	validate *validator.Validate
}

func NewEmailValidator() EmailValidator {
	return &emailValidator{validate: validator.New()}
}

func (v *emailValidator) IsValid(email string) bool {
	return v.validate.Var(email, "required,email") == nil
}
