package commentRepository

import (
	"fmt"

	"TechTalks/database"
	"TechTalks/internal/entity"
	"TechTalks/pkg/utils"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// CommentStore lists comments in insertion order. The blog id of a comment is
// stored as given and never checked against the blogs.
type CommentStore interface {
	CreateComment(ctx context.Context, comment entity.Comment) (entity.InsertResult, error)
	ListComments(ctx context.Context) ([]entity.Comment, error)
	ListCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error)
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

type Client struct {
	Comments CommentStore

	Commit   func() error
	Rollback func() error
}

func New(conn *database.Connection, log *logrus.Logger, u utils.IUtils) (Repository, error) {
	switch conn.Driver {
	case database.DriverMongo:
		return &mongoRepository{comments: &commentsMongoRepository{
			coll: conn.Mongo.Collection(mongoCollection),
			log:  log,
		}}, nil
	case database.DriverPostgres:
		return &postgresRepository{DB: conn.Postgres, log: log, utils: u}, nil
	case database.DriverMemory:
		return &memoryRepository{comments: newCommentsMemoryRepository(log)}, nil
	default:
		return nil, fmt.Errorf("comment repository: unsupported driver %q", conn.Driver)
	}
}

func noop() error { return nil }

type mongoRepository struct {
	comments *commentsMongoRepository
}

func (r *mongoRepository) NewClient(tx bool) (Client, error) {
	return Client{Comments: r.comments, Commit: noop, Rollback: noop}, nil
}

type memoryRepository struct {
	comments *commentsMemoryRepository
}

func (r *memoryRepository) NewClient(tx bool) (Client, error) {
	return Client{Comments: r.comments, Commit: noop, Rollback: noop}, nil
}

type postgresRepository struct {
	DB    *sqlx.DB
	log   *logrus.Logger
	utils utils.IUtils
}

func (r *postgresRepository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = noop
		rollbackFunc = noop
	}

	return Client{
		Comments: &commentsPostgresRepository{q: sqlExecutor, log: r.log, utils: r.utils},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}
