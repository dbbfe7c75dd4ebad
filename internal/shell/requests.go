package shell

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// viewRequest addresses a mounted view.
type viewRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

// selectRequest re-points the detail focus of a mounted view.
type selectRequest struct {
	ID  string `param:"id" validate:"required,uuid"`
	Key string `param:"key" validate:"required,max=256"`
}
