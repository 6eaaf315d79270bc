package authHandler

import (
	"time"

	"TechTalks/internal/api/auth"
	authService "TechTalks/internal/api/auth/service"
	"TechTalks/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	middleware     middleware.Middleware
	cookie         auth.CookieConfig
	requestTimeout time.Duration
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	middleware middleware.Middleware,
	cookie auth.CookieConfig,
	requestTimeout time.Duration,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		middleware:     middleware,
		cookie:         cookie,
		requestTimeout: requestTimeout,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	srv.Post("/jwt", h.HandleIssueToken)
	srv.Get("/logout", h.HandleLogout)
}
