package blogService

import (
	"errors"
	"time"

	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"TechTalks/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// storeError keeps declared domain errors and wraps everything else in fallback.
func storeError(err error, fallback error) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return err
	}
	return response.Wrap(fallback, err)
}

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.InsertResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.InsertResult{}, response.Wrap(blogs.ErrCreateBlog, err)
	}
	defer repo.Rollback()

	blog := req.ToEntity()
	blog.CreatedAt = time.Now()

	result, err := repo.Blogs.CreateBlog(ctx, blog)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return entity.InsertResult{}, storeError(err, blogs.ErrCreateBlog)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.InsertResult{}, response.Wrap(blogs.ErrCreateBlog, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         result.InsertedID,
	}).Info("Blog created")

	return result, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (*entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(blogs.ErrGetBlog, err)
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrInvalidBlogID) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Malformed blog id")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return nil, storeError(err, blogs.ErrGetBlog)
	}

	if blog == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Debug("Blog not found")
	}

	return blog, nil
}

func (s *blogsService) ListBlogs(ctx context.Context, query blogs.ListQuery) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(blogs.ErrListBlogs, err)
	}

	blogsList, total, err := repo.Blogs.ListBlogs(ctx, query)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       query.Page,
			"size":       query.Size,
			"filter":     query.Filter,
			"search":     query.Search,
			"error":      err.Error(),
		}).Error("Failed to list blogs")
		return nil, storeError(err, blogs.ErrListBlogs)
	}

	if blogsList == nil {
		blogsList = []entity.Blog{}
	}

	return &blogs.BlogListResponse{
		Blogs: blogsList,
		Count: total,
	}, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.UpdateResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	update := req.ToEntity()
	if update.IsEmpty() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Update request carries no fields")
		return entity.UpdateResult{}, blogs.ErrEmptyUpdate
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.UpdateResult{}, response.Wrap(blogs.ErrUpdateBlog, err)
	}
	defer repo.Rollback()

	// upsert: an unknown id creates a blog holding only the given fields
	result, err := repo.Blogs.UpsertBlog(ctx, id, update)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return entity.UpdateResult{}, storeError(err, blogs.ErrUpdateBlog)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.UpdateResult{}, response.Wrap(blogs.ErrUpdateBlog, err)
	}

	if result.UpsertedCount > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Info("Blog created by upsert")
	}

	return result, nil
}

func (s *blogsService) GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.Wrap(blogs.ErrListCategories, err)
	}

	categories, err := repo.Blogs.ListCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, storeError(err, blogs.ErrListCategories)
	}

	if categories == nil {
		categories = []string{}
	}

	return &blogs.CategoryListResponse{Categories: categories}, nil
}
