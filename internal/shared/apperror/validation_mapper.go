package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationError converts a gin binding failure into a single AppError
// naming the first offending field.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		field := strings.ReplaceAll(e.Field(), "_", " ")

		switch e.Tag() {
		case "required":
			return Validation(fmt.Sprintf("%s is required", field))
		case "oneof":
			return Validation(fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			return Validation(fmt.Sprintf("%s is invalid", field))
		}
	}

	return New(CodeValidation, "Invalid input", http.StatusBadRequest)
}
