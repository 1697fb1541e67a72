package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Success writes 200 {success: true, message} merged with any extra fields.
func Success(c *fiber.Ctx, message string, extra fiber.Map) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Formatter renders error responses. ExposeDetail adds the underlying error
// text under "message"; it is decided once from configuration, never per request.
type Formatter struct {
	ExposeDetail bool
}

func NewFormatter(exposeDetail bool) Formatter {
	return Formatter{ExposeDetail: exposeDetail}
}

// Failure writes {success: false, error: public[, message]}.
func (f Formatter) Failure(c *fiber.Ctx, status int, public string, err error) error {
	body := fiber.Map{
		"success": false,
		"error":   public,
	}
	f.addDetail(body, err)
	return c.Status(status).JSON(body)
}

// Internal writes the catch-all {error[, message]} body. Framework errors
// such as 404 keep their own message; everything else is "Internal Server Error".
func (f Formatter) Internal(c *fiber.Ctx, status int, err error) error {
	msg := "Internal Server Error"
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
		msg = fe.Message
	}
	body := fiber.Map{
		"error": msg,
	}
	f.addDetail(body, err)
	return c.Status(status).JSON(body)
}

func (f Formatter) addDetail(body fiber.Map, err error) {
	if f.ExposeDetail && err != nil {
		body["message"] = err.Error()
	}
}
