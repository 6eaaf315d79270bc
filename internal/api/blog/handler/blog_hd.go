package blogHandler

import (
	"TechTalks/internal/api/blog"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/handlerUtil"
	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	var req blogs.CreateBlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, blogs.ErrInvalidBlogData, ctx.Path(), "create_blog")
	}

	result, err := h.blogsService.CreateBlog(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *BlogsHandler) ListBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req := blogs.ListBlogsRequest{
		Page:   ctx.Query("page"),
		Size:   ctx.Query("size"),
		Filter: ctx.Query("filter"),
		Search: ctx.Query("search"),
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"page":       req.Page,
		"size":       req.Size,
		"filter":     req.Filter,
		"search":     req.Search,
	}).Debug("Processing list blogs request")

	query := blogs.NewListQuery(
		blogs.ParseIntOrDefault(req.Page, blogs.DefaultPage),
		blogs.ParseIntOrDefault(req.Size, blogs.DefaultPageSize),
		req.Filter,
		req.Search,
	)

	res, err := h.blogsService.ListBlogs(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *BlogsHandler) GetAllCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all categories request")

	res, err := h.blogsService.GetAllCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

// GetBlogByID answers a JSON null when no blog has the id.
func (h *BlogsHandler) GetBlogByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get blog by ID request")

	param := blogs.BlogIDParam{ID: ctx.Params("id")}
	if err := h.validator.Struct(param); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	blog, err := h.blogsService.GetBlogByID(c, param.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		if blog == nil {
			ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return ctx.Status(fiber.StatusOK).SendString("null")
		}
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blog)
	}
}

func (h *BlogsHandler) UpdateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	fields := log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}
	if claims, err := jwtPkg.GetClaims(ctx); err == nil {
		fields["token_id"] = jwtPkg.TokenID(claims)
	}
	h.log.WithFields(fields).Debug("Processing update blog request")

	param := blogs.BlogIDParam{ID: ctx.Params("id")}
	if err := h.validator.Struct(param); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var req blogs.UpdateBlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, blogs.ErrInvalidBlogData, ctx.Path(), "update_blog")
	}

	result, err := h.blogsService.UpdateBlog(c, param.ID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
