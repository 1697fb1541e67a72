package middleware

import (
	"errors"
	"log"

	"relay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the application-wide fiber.ErrorHandler. It logs the
// failure and answers with the catch-all body; fiber errors such as 404 and
// 413 keep their status, everything else becomes 500.
func ErrorHandler(f response.Formatter) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Printf("Unhandled error on %s %s (request %s): %v", c.Method(), c.Path(), GetRequestID(c), err)
		}

		return f.Internal(c, code, err)
	}
}
