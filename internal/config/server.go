package config

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"TechTalks/database"
	authHandler "TechTalks/internal/api/auth/handler"
	authService "TechTalks/internal/api/auth/service"
	blogHandler "TechTalks/internal/api/blog/handler"
	blogRepository "TechTalks/internal/api/blog/repository"
	blogService "TechTalks/internal/api/blog/service"
	commentHandler "TechTalks/internal/api/comment/handler"
	commentRepository "TechTalks/internal/api/comment/repository"
	commentService "TechTalks/internal/api/comment/service"
	"TechTalks/internal/middleware"
	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/redis"
	"TechTalks/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

const healthMessage = "tech-talks blog server is running."

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *database.Connection
	log         *logrus.Logger
	env         Env
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	tokens      jwtPkg.IJWT
	redisServer redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.env.RequestTimeout <= 0 {
		server.env.RequestTimeout = 10 * time.Second
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithEnv(env Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithDatabase(conn *database.Connection) ServerOption {
	return func(s *Server) error {
		if conn == nil {
			return fmt.Errorf("database connection is nil")
		}
		s.db = conn
		return nil
	}
}

func WithTokenManager(tokens jwtPkg.IJWT) ServerOption {
	return func(s *Server) error {
		s.tokens = tokens
		return nil
	}
}

// WithRevocationStore enables the logout denylist. Without it logout only
// clears the cookie.
func WithRevocationStore(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.tokens == nil {
			return fmt.Errorf("token manager must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.tokens, s.redisServer, s.env.RateLimit())
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

// RegisterHandler builds every domain and mounts the middleware chain and
// routes on the fiber app. It must be called once before Run.
func (s *Server) RegisterHandler() error {
	// Blog Domain
	blogRepo, err := blogRepository.New(s.db, s.log, s.utils)
	if err != nil {
		return err
	}
	blogServices := blogService.NewBlogsService(s.log, blogRepo)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices, s.env.RequestTimeout)

	// Comment Domain
	commentRepo, err := commentRepository.New(s.db, s.log, s.utils)
	if err != nil {
		return err
	}
	commentServices := commentService.NewCommentService(s.log, commentRepo)
	commentHandlers := commentHandler.New(s.log, s.validator, s.middleware, commentServices, s.env.RequestTimeout)

	// Auth Domain
	authServices := authService.New(s.log, s.tokens, s.redisServer)
	authHandlers := authHandler.New(s.log, authServices, s.middleware, s.env.CookieConfig(), s.env.RequestTimeout)

	s.handlers = append(s.handlers, authHandlers, blogHandlers, commentHandlers)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			s.log.WithFields(logrus.Fields{
				"request_id": s.middleware.GetRequestID(c),
				"path":       c.Path(),
				"panic":      e,
				"stack":      string(debug.Stack()),
			}).Error("Recovered from panic")
		},
	}))
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     s.env.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowCredentials: true,
	}))
	s.engine.Use(s.middleware.NewRateLimiter)

	s.setupHealthCheck()
	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	return nil
}

func (s *Server) Run() error {
	port := s.env.AppPort
	if port == "" {
		port = "5000"
	}

	s.log.WithFields(logrus.Fields{
		"port":   port,
		"driver": s.db.Driver,
		"env":    s.env.AppEnv,
	}).Info("Starting server")

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// releases the store clients.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		s.log.WithError(err).Error("Failed to shut down http server")
	}

	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close redis client")
		}
	}

	return s.db.Close(ctx)
}

// App exposes the fiber app so routes can be driven with app.Test.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString(healthMessage)
	})
}
