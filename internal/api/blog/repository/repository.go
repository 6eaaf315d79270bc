package blogRepository

import (
	"fmt"

	"TechTalks/database"
	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	"TechTalks/pkg/utils"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// BlogStore is the set of store calls the blog service makes. GetBlogByID
// returns a nil blog and no error when nothing matches.
type BlogStore interface {
	CreateBlog(ctx context.Context, blog entity.Blog) (entity.InsertResult, error)
	GetBlogByID(ctx context.Context, id string) (*entity.Blog, error)
	ListBlogs(ctx context.Context, query blogs.ListQuery) ([]entity.Blog, int64, error)
	UpsertBlog(ctx context.Context, id string, update entity.BlogUpdate) (entity.UpdateResult, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

type Client struct {
	Blogs BlogStore

	Commit   func() error
	Rollback func() error
}

func New(conn *database.Connection, log *logrus.Logger, u utils.IUtils) (Repository, error) {
	switch conn.Driver {
	case database.DriverMongo:
		return &mongoRepository{blogs: &blogsMongoRepository{
			coll: conn.Mongo.Collection(mongoCollection),
			log:  log,
		}}, nil
	case database.DriverPostgres:
		return &postgresRepository{DB: conn.Postgres, log: log, utils: u}, nil
	case database.DriverMemory:
		return &memoryRepository{blogs: newBlogsMemoryRepository(log)}, nil
	default:
		return nil, fmt.Errorf("blog repository: unsupported driver %q", conn.Driver)
	}
}

func noop() error { return nil }

type mongoRepository struct {
	blogs *blogsMongoRepository
}

// NewClient ignores tx: every blog operation is a single document write.
func (r *mongoRepository) NewClient(tx bool) (Client, error) {
	return Client{Blogs: r.blogs, Commit: noop, Rollback: noop}, nil
}

type memoryRepository struct {
	blogs *blogsMemoryRepository
}

func (r *memoryRepository) NewClient(tx bool) (Client, error) {
	return Client{Blogs: r.blogs, Commit: noop, Rollback: noop}, nil
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
		Blogs:    &blogsPostgresRepository{q: sqlExecutor, log: r.log, utils: r.utils},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}
