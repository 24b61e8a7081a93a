package usecase

import (
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// validateInput runs struct validation and turns failures into a 400.
func validateInput(v *validator.Validate, input interface{}) error {
	if err := v.Struct(input); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}
