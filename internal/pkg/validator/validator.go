package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// User role validation
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		validRoles := []string{"CLIENT", "ARTIST", "ADMIN"}
		for _, r := range validRoles {
			if role == r {
				return true
			}
		}
		return false
	})

	// Appointment status validation
	validate.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"PENDING", "CONFIRMED", "CANCELED", "COMPLETED"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Style slug validation (kebab-case)
	validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})

	// Two-letter state code
	validate.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		uf := fl.Field().String()
		return len(uf) == 2 && strings.ToUpper(uf) == uf
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "len":
			errors[field] = "Value must have length " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "uuid":
			errors[field] = "Invalid UUID"
		case "datetime":
			errors[field] = "Invalid timestamp, expected " + err.Param()
		case "role":
			errors[field] = "Invalid role. Must be: CLIENT, ARTIST, or ADMIN"
		case "appointment_status":
			errors[field] = "Invalid status. Must be: PENDING, CONFIRMED, CANCELED, or COMPLETED"
		case "slug":
			errors[field] = "Invalid slug, expected kebab-case (e.g. old-school)"
		case "uf":
			errors[field] = "Invalid state, expected a 2-letter code"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
