package validation

import (
	"errors"
	"fmt"
	"strings"

	"notes-be/internal/repository/contract"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a persistence model against its `validate` tags and
// reports failures as a contract validation error.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return contract.ValidationFailed("Note validation failed: " + strings.Join(msgs, ", "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: %s is required", field, field)
	case "min":
		return fmt.Sprintf("%s: %s is shorter than the minimum allowed length (%s)", field, field, fe.Param())
	default:
		return fmt.Sprintf("%s: failed on %s", field, fe.Tag())
	}
}
