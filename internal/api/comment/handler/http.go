package commentHandler

import (
	"time"

	commentService "TechTalks/internal/api/comment/service"
	"TechTalks/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	commentService commentService.ICommentService
	requestTimeout time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs commentService.ICommentService,
	requestTimeout time.Duration,
) *CommentHandler {
	return &CommentHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		commentService: cs,
		requestTimeout: requestTimeout,
	}
}

func (h *CommentHandler) Start(srv fiber.Router) {
	comments := srv.Group("/comments")

	comments.Post("", h.CreateComment)
	comments.Get("", h.ListComments)
	comments.Get("/:id", h.ListCommentsByBlogID)
}
