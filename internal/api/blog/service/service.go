package blogService

import (
	"context"

	"TechTalks/internal/api/blog"
	blogsRepository "TechTalks/internal/api/blog/repository"
	"TechTalks/internal/entity"
	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.InsertResult, error)
	GetBlogByID(ctx context.Context, id string) (*entity.Blog, error)
	ListBlogs(ctx context.Context, query blogs.ListQuery) (*blogs.BlogListResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.UpdateResult, error)
	GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
	}
}
