package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจสอบ struct ตาม validate tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validation errors เป็น map สำหรับ response details
func GetValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["error"] = err.Error()
		return errs
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		errs[field] = validationMessage(fieldErr)
	}

	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "uuid":
		return "must be a valid uuid"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}
