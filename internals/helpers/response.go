package helper

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "notblank": non-empty after trimming whitespace
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidateStruct runs the struct's validate tags and turns the FIRST failing
// field into a 400. messages maps struct field names to the client message;
// fields follow declaration order, so it also fixes which error wins.
func ValidateStruct(s any, messages map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	fe := ve[0]
	if msg, ok := messages[fe.Field()]; ok {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
}

// BadRequest is a 400 with the given message.
func BadRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

// MsgInvalidBody is returned when the request body cannot be decoded.
const MsgInvalidBody = "طلب غير صالح"

// ParseBody decodes the request body into out. An empty body, or one whose
// content type fiber does not decode, leaves out zero-valued so field
// validation picks the message.
func ParseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		if errors.Is(err, fiber.ErrUnprocessableEntity) {
			return nil
		}
		return BadRequest(MsgInvalidBody)
	}
	return nil
}
