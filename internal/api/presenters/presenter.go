package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ErrorResponse renders the error envelope. Validation failures are expanded
// into per-field entries; internal errors are logged and their detail is
// withheld from the client.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	payload := fiber.Map{
		"status":  "error",
		"message": message,
	}

	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		fields := make([]FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		payload["errors"] = fields
	case code >= fiber.StatusInternalServerError:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	case err != nil:
		payload["error"] = err.Error()
	}

	return c.Status(code).JSON(payload)
}
