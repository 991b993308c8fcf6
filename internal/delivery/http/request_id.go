package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is echoed back on every response
	HeaderRequestID = "X-Request-ID"
	// LocalsRequestID is the fiber locals key, usable as ${locals:requestid} in the logger format
	LocalsRequestID = "requestid"
)

// RequestID injects X-Request-ID, keeping a client supplied one
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals(LocalsRequestID, reqID)
		return c.Next()
	}
}
