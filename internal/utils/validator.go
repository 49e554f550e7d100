// internal/utils/validator.go
package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("snowflake", validateSnowflake)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSnowflake(fl validator.FieldLevel) bool {
	id := fl.Field().String()

	// Discord snowflakes are decimal strings of up to 20 digits
	if len(id) == 0 || len(id) > 20 {
		return false
	}

	for _, char := range id {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
