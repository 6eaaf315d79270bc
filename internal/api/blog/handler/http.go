package blogHandler

import (
	"time"

	blogsService "TechTalks/internal/api/blog/service"
	"TechTalks/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	blogsService   blogsService.IBlogsService
	requestTimeout time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
	requestTimeout time.Duration,
) *BlogsHandler {
	return &BlogsHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		blogsService:   bs,
		requestTimeout: requestTimeout,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Post("", h.CreateBlog)
	blogs.Get("", h.ListBlogs)
	blogs.Get("/categories", h.GetAllCategories)
	blogs.Get("/:id", h.GetBlogByID)

	// only edits are gated
	blogs.Patch("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
}
