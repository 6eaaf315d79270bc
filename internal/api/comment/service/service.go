package commentService

import (
	"context"

	"TechTalks/internal/api/comment"
	commentRepository "TechTalks/internal/api/comment/repository"
	"TechTalks/internal/entity"
	"github.com/sirupsen/logrus"
)

type ICommentService interface {
	CreateComment(ctx context.Context, req comments.CreateCommentRequest) (entity.InsertResult, error)
	ListComments(ctx context.Context) ([]entity.Comment, error)
	ListCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error)
}

type commentService struct {
	log          *logrus.Logger
	commentsRepo commentRepository.Repository
}

func NewCommentService(
	log *logrus.Logger,
	commentsRepo commentRepository.Repository,
) ICommentService {
	return &commentService{
		log:          log,
		commentsRepo: commentsRepo,
	}
}
