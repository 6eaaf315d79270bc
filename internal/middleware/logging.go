package middleware

import (
	"time"

	"TechTalks/pkg/log"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sensitiveFields = []string{
	"password", "token", "secret", "key", "auth",
	"credential", "authorization", "cookie",
}

// NewLoggingMiddleware writes one access log line per request.
func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := m.GetRequestID(c)

		err := c.Next()
		if err != nil {
			// let the app error handler set the final status before logging
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    time.Since(start).Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get(fiber.HeaderUserAgent),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(body)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error(logFields, "Server error")
		case status >= fiber.StatusBadRequest:
			log.Warn(logFields, "Client error")
		default:
			log.Info(logFields, "Success")
		}

		return nil
	}
}

func sanitizeRequestBody(body []byte) string {
	var jsonBody map[string]interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for _, field := range sensitiveFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[SECRET]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
