package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct validates a struct using its validate tags.
// Returns a *ValidationError with per-field messages on failure.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		return NewValidationError(errs)
	}
	return err
}
