package commentService

import (
	"time"

	"TechTalks/internal/api/comment"
	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentService) CreateComment(ctx context.Context, req comments.CreateCommentRequest) (entity.InsertResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.InsertResult{}, response.Wrap(comments.ErrCreateComment, err)
	}
	defer repo.Rollback()

	comment := req.ToEntity()
	comment.CreatedAt = time.Now()

	result, err := repo.Comments.CreateComment(ctx, comment)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return entity.InsertResult{}, response.Wrap(comments.ErrCreateComment, err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.InsertResult{}, response.Wrap(comments.ErrCreateComment, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         result.InsertedID,
		"blog_id":    comment.BlogID,
	}).Info("Comment created")

	return result, nil
}

func (s *commentService) ListComments(ctx context.Context) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(comments.ErrListComments, err)
	}

	list, err := repo.Comments.ListComments(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list comments")
		return nil, response.Wrap(comments.ErrListComments, err)
	}

	if list == nil {
		list = []entity.Comment{}
	}
	return list, nil
}

func (s *commentService) ListCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(comments.ErrListComments, err)
	}

	list, err := repo.Comments.ListCommentsByBlogID(ctx, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to list comments by blog")
		return nil, response.Wrap(comments.ErrListComments, err)
	}

	if list == nil {
		list = []entity.Comment{}
	}
	return list, nil
}
