package middleware

import (
	"errors"
	"time"

	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/handlerUtil"
	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	MessageUnauthorized = "unauthorized access"
	MessageForbidden    = "forbidden access"
)

type tokenMiddleware struct {
	tokens  jwtPkg.IJWT
	revoked redis.IRedis
}

func newTokenMiddleware(tokens jwtPkg.IJWT, revoked redis.IRedis) *tokenMiddleware {
	return &tokenMiddleware{
		tokens:  tokens,
		revoked: revoked,
	}
}

// NewTokenMiddleware guards a route with the token cookie: a missing cookie is
// 401, a cookie that does not verify is 403. Verified claims are stored under
// jwtPkg.ClaimsKey for the next handler.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	errHandler := handlerUtil.New(m.log)

	accessToken := ctx.Cookies(jwtPkg.CookieName)
	if accessToken == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, MessageUnauthorized)
	}

	claims, err := m.token.tokens.Verify(accessToken)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expired":    isExpired(err),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return errHandler.HandleForbidden(ctx, requestID, MessageForbidden)
	}

	if m.token.revoked != nil {
		c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 3*time.Second)
		defer cancel()

		revoked, err := m.token.revoked.IsTokenRevoked(c, jwtPkg.TokenID(claims))
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "check_token_revocation")
		}
		if revoked {
			m.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Revoked token presented")
			return errHandler.HandleForbidden(ctx, requestID, MessageForbidden)
		}
	}

	ctx.Locals(jwtPkg.ClaimsKey, claims)

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Debug("Authentication successful")
	return ctx.Next()
}

func isExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
