package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation on a request DTO and returns a
// readable error listing every failed field.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var invalidErr *validator.InvalidValidationError
		if ok := strings.Contains(err.Error(), "invalid"); ok {
			if ive, isInvalid := err.(*validator.InvalidValidationError); isInvalid {
				invalidErr = ive
				return fmt.Errorf("validation setup error: %v", invalidErr)
			}
		}

		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}
	return nil
}
