package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var allowedRoles = map[string]bool{
	"candidate": true,
	"recruiter": true,
}

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("user_role", UserRole)
}

// NotBlank rejects strings made only of whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// UserRole accepts the roles a registered account can hold
func UserRole(fl validator.FieldLevel) bool {
	return allowedRoles[fl.Field().String()]
}
