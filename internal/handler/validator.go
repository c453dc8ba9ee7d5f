package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for district
	_ = v.RegisterValidation("district", validateDistrict)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and keeps messages clean.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "district":
			errs[field] = "Unknown district"
		case "uuid":
			errs[field] = "Must be a valid ID"
		case "latitude":
			errs[field] = "Must be a valid latitude"
		case "longitude":
			errs[field] = "Must be a valid longitude"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidDistricts defines the districts of the trading world
var ValidDistricts = map[string]bool{
	"dockside":    true,
	"neon row":    true,
	"old quarter": true,
	"uptown":      true,
}

// Custom validation function for district
func validateDistrict(fl validator.FieldLevel) bool {
	district := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if district == "" {
		return true
	}
	return ValidDistricts[strings.ToLower(district)]
}
