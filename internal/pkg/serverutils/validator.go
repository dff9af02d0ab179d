package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest checks a request DTO and returns a 400 fiber.Error
// describing the first failing field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s missing", fe.Field()))
	default:
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
}
