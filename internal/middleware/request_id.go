package middleware

import (
	"strings"
	"time"

	"TechTalks/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDKey = "X-Request-ID"

	maxRequestIDLength = 128
)

// NewRequestIDMiddleware tags each request with an id stored in Locals and
// echoed in the response. A caller id is kept only when it is short printable
// ASCII; otherwise a ULID is minted.
func NewRequestIDMiddleware(u utils.IUtils) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)
		if isUsableRequestID(requestID) {
			// fasthttp reuses the header buffer after the request
			requestID = strings.Clone(requestID)
		} else {
			requestID = newRequestID(u)
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

func newRequestID(u utils.IUtils) string {
	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return uuid.NewString()
	}
	return id
}

func isUsableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
