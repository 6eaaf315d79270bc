package commentRepository

import (
	"sync"

	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

type commentsMemoryRepository struct {
	mu       sync.RWMutex
	comments []entity.Comment
	log      *logrus.Logger
}

func newCommentsMemoryRepository(log *logrus.Logger) *commentsMemoryRepository {
	return &commentsMemoryRepository{log: log}
}

func (r *commentsMemoryRepository) CreateComment(ctx context.Context, comment entity.Comment) (entity.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = primitive.NewObjectID().Hex()
	r.comments = append(r.comments, comment)

	r.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"id":         comment.ID,
	}).Debug("Comment stored in memory")

	return entity.InsertResult{Acknowledged: true, InsertedID: comment.ID}, nil
}

func (r *commentsMemoryRepository) ListComments(ctx context.Context) ([]entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entity.Comment, 0, len(r.comments))
	list = append(list, r.comments...)
	return list, nil
}

func (r *commentsMemoryRepository) ListCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []entity.Comment{}
	for _, comment := range r.comments {
		if comment.BlogID == blogID {
			list = append(list, comment)
		}
	}
	return list, nil
}
