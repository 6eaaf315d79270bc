package middleware

import (
	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/redis"
	"TechTalks/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type RateLimit struct {
	PerSecond rate.Limit
	Burst     int
}

type middleware struct {
	token               *tokenMiddleware
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

// New wires the middleware set. revoked may be nil, in which case logged out
// tokens stay valid until they expire.
func New(logger *logrus.Logger, tokens jwtPkg.IJWT, revoked redis.IRedis, limit RateLimit) Middleware {
	if limit.PerSecond <= 0 {
		limit.PerSecond = 50
	}
	if limit.Burst <= 0 {
		limit.Burst = 100
	}

	return &middleware{
		token:               newTokenMiddleware(tokens, revoked),
		rateLimitter:        newRateLimiter(limit.PerSecond, limit.Burst),
		requestIDMiddleware: NewRequestIDMiddleware(utils.New()),
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
