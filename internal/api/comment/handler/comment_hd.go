package commentHandler

import (
	"TechTalks/internal/api/comment"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/handlerUtil"
	"TechTalks/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CommentHandler) CreateComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create comment request")

	var req comments.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, comments.ErrInvalidCommentData, ctx.Path(), "create_comment")
	}

	result, err := h.commentService.CreateComment(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CommentHandler) ListComments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list comments request")

	list, err := h.commentService.ListComments(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_comments")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, list)
	}
}

// ListCommentsByBlogID takes the blog id from the path and does not check
// that the blog exists.
func (h *CommentHandler) ListCommentsByBlogID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list comments by blog request")

	param := comments.BlogIDParam{BlogID: ctx.Params("id")}
	if err := h.validator.Struct(param); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	list, err := h.commentService.ListCommentsByBlogID(c, param.BlogID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_comments_by_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, list)
	}
}
