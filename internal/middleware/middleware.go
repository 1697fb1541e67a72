// Package middleware provides HTTP middleware components for the relay.
// It includes request tagging, rate limiting and the catch-all error handler
// used with the fiber web framework.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDKey is the fiber Locals key holding the current request id.
const RequestIDKey = "requestid"

// RequestID tags every request with an X-Request-ID, reusing the client's
// header when present.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

// GetRequestID returns the id assigned by RequestID, or "" outside it.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
