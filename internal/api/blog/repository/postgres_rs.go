package blogRepository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/utils"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type BlogDB struct {
	ID               sql.NullString `db:"id"`
	Title            sql.NullString `db:"title"`
	Image            sql.NullString `db:"image"`
	Category         sql.NullString `db:"category"`
	ShortDescription sql.NullString `db:"short_description"`
	LongDescription  sql.NullString `db:"long_description"`
	CreatedAt        time.Time      `db:"created_at"`
}

type blogsPostgresRepository struct {
	q     SQLExecutor
	log   *logrus.Logger
	utils utils.IUtils
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListWhere returns the WHERE clause and named args for a listing. The
// search term is matched literally with ILIKE.
func buildListWhere(q blogs.ListQuery) (string, map[string]interface{}) {
	args := map[string]interface{}{}
	var conds []string

	if q.HasFilter() {
		conds = append(conds, "category = :category")
		args["category"] = q.Filter
	}

	if q.HasSearch() {
		ors := make([]string, 0, len(blogs.SearchFields))
		for _, field := range blogs.SearchFields {
			ors = append(ors, field+" ILIKE :pattern")
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
		args["pattern"] = "%" + likeEscaper.Replace(q.Search) + "%"
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *blogsPostgresRepository) CreateBlog(ctx context.Context, blog entity.Blog) (entity.InsertResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := r.utils.NewULIDFromTimestamp(blog.CreatedAt)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.InsertResult{}, err
	}

	argsKV := map[string]interface{}{
		"id":                id,
		"title":             blog.Title,
		"image":             blog.Image,
		"category":          blog.Category,
		"short_description": blog.ShortDescription,
		"long_description":  blog.LongDescription,
		"created_at":        blog.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return entity.InsertResult{}, err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return entity.InsertResult{}, err
	}

	return entity.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *blogsPostgresRepository) GetBlogByID(ctx context.Context, id string) (*entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !r.utils.IsULID(id) {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("GetBlogByID malformed id")
		return nil, blogs.ErrInvalidBlogID
	}

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var row BlogDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return nil, err
	}

	blog := r.makeBlog(row)
	return &blog, nil
}

func (r *blogsPostgresRepository) ListBlogs(ctx context.Context, q blogs.ListQuery) ([]entity.Blog, int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	where, argsKV := buildListWhere(q)

	countQuery, countArgs, err := sqlx.Named(fmt.Sprintf(queryCountBlogs, where), argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBlogs named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	var total int64
	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBlogs execution err")
		return nil, 0, err
	}

	argsKV["limit"] = q.Limit()
	argsKV["offset"] = q.Skip()

	query, args, err := sqlx.Named(fmt.Sprintf(queryListBlogs, where), argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	var rows []BlogDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs execution err")
		return nil, 0, err
	}

	list := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		list = append(list, r.makeBlog(row))
	}

	return list, total, nil
}

func (r *blogsPostgresRepository) UpsertBlog(ctx context.Context, id string, update entity.BlogUpdate) (entity.UpdateResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !r.utils.IsULID(id) {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("UpsertBlog malformed id")
		return entity.UpdateResult{}, blogs.ErrInvalidBlogID
	}

	var values entity.Blog
	update.Apply(&values)

	argsKV := map[string]interface{}{
		"id":                    id,
		"title":                 values.Title,
		"image":                 values.Image,
		"category":              values.Category,
		"short_description":     values.ShortDescription,
		"long_description":      values.LongDescription,
		"created_at":            time.Now(),
		"set_title":             update.Title != nil,
		"set_image":             update.Image != nil,
		"set_category":          update.Category != nil,
		"set_short_description": update.ShortDescription != nil,
		"set_long_description":  update.LongDescription != nil,
	}

	query, args, err := sqlx.Named(queryUpsertBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertBlog named query preparation err")
		return entity.UpdateResult{}, err
	}
	query = r.q.Rebind(query)

	var inserted bool
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("UpsertBlog execution err")
		return entity.UpdateResult{}, err
	}

	if inserted {
		return entity.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
	}
	return entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *blogsPostgresRepository) ListCategories(ctx context.Context) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	categories := []string{}
	if err := r.q.SelectContext(ctx, &categories, queryListCategories); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListCategories execution err")
		return nil, err
	}

	return categories, nil
}

func (r *blogsPostgresRepository) makeBlog(row BlogDB) entity.Blog {
	return entity.Blog{
		ID:               strings.TrimSpace(row.ID.String),
		Title:            row.Title.String,
		Image:            row.Image.String,
		Category:         row.Category.String,
		ShortDescription: row.ShortDescription.String,
		LongDescription:  row.LongDescription.String,
		CreatedAt:        row.CreatedAt,
	}
}
