package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens failures into a
// single message suitable for a 400 response body.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			fields = append(fields, fmt.Sprintf("%s must not be empty", fe.Field()))
		case "email":
			fields = append(fields, fmt.Sprintf("%s must be a valid email", fe.Field()))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return fmt.Errorf("%s", strings.Join(fields, ", "))
}
