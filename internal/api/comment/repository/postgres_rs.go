package commentRepository

import (
	"database/sql"
	"time"

	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/utils"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type CommentDB struct {
	ID        sql.NullString `db:"id"`
	BlogID    sql.NullString `db:"blog_id"`
	Text      sql.NullString `db:"text"`
	UserName  sql.NullString `db:"user_name"`
	UserEmail sql.NullString `db:"user_email"`
	UserImage sql.NullString `db:"user_image"`
	CreatedAt time.Time      `db:"created_at"`
}

type commentsPostgresRepository struct {
	q     SQLExecutor
	log   *logrus.Logger
	utils utils.IUtils
}

func (r *commentsPostgresRepository) CreateComment(ctx context.Context, comment entity.Comment) (entity.InsertResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := r.utils.NewULIDFromTimestamp(comment.CreatedAt)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.InsertResult{}, err
	}

	argsKV := map[string]interface{}{
		"id":         id,
		"blog_id":    comment.BlogID,
		"text":       comment.Text,
		"user_name":  comment.UserName,
		"user_email": comment.UserEmail,
		"user_image": comment.UserImage,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return entity.InsertResult{}, err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return entity.InsertResult{}, err
	}

	return entity.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *commentsPostgresRepository) ListComments(ctx context.Context) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []CommentDB
	if err := r.q.SelectContext(ctx, &rows, queryListComments); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListComments execution err")
		return nil, err
	}

	return r.makeComments(rows), nil
}

func (r *commentsPostgresRepository) ListCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryListCommentsByBlogID, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListCommentsByBlogID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []CommentDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("ListCommentsByBlogID execution err")
		return nil, err
	}

	return r.makeComments(rows), nil
}

func (r *commentsPostgresRepository) makeComments(rows []CommentDB) []entity.Comment {
	list := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		list = append(list, entity.Comment{
			ID:        row.ID.String,
			BlogID:    row.BlogID.String,
			Text:      row.Text.String,
			UserName:  row.UserName.String,
			UserEmail: row.UserEmail.String,
			UserImage: row.UserImage.String,
			CreatedAt: row.CreatedAt,
		})
	}
	return list
}
