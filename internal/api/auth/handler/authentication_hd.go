package authHandler

import (
	"bytes"
	"time"

	"TechTalks/internal/api/auth"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/handlerUtil"
	jwtPkg "TechTalks/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// HandleIssueToken signs whatever JSON object the caller posts and returns it
// in the token cookie. The payload is not checked against any schema.
func (h *AuthHandler) HandleIssueToken(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing issue token request")

	var claims map[string]interface{}
	if body := bytes.TrimSpace(ctx.Body()); len(body) > 0 {
		if err := ctx.App().Config().JSONDecoder(body, &claims); err != nil {
			return errHandler.Handle(ctx, requestID, auth.ErrInvalidClaims, ctx.Path(), "issue_token")
		}
	}

	token, expiresAt, err := h.authService.IssueToken(c, claims)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "issue_token")
	}

	ctx.Cookie(h.tokenCookie(token, expiresAt))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, auth.SuccessResponse{Success: true})
	}
}

// HandleLogout tells the client to drop the token cookie.
func (h *AuthHandler) HandleLogout(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing logout request")

	if accessToken := ctx.Cookies(jwtPkg.CookieName); accessToken != "" {
		if err := h.authService.RevokeToken(c, accessToken); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "logout")
		}
	}

	ctx.Cookie(h.tokenCookie("", time.Unix(0, 0)))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, auth.SuccessResponse{Success: true})
	}
}

func (h *AuthHandler) tokenCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     jwtPkg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	}
}
