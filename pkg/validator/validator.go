package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// workplan_status validates the workplan item lifecycle values
	_ = v.RegisterValidation("workplan_status", func(fl validator.FieldLevel) bool {
		return entities.ValidWorkplanStatus(entities.WorkplanItemStatus(fl.Field().String()))
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
