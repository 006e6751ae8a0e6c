// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	domainerrors "herbal/internal/domain/errors"
	"herbal/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate reports the first failing field as a VALIDATION_FAILED error.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fieldErrs[0].Field() + " failed on " + fieldErrs[0].Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}
