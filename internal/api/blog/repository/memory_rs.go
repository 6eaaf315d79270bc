package blogRepository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

// blogsMemoryRepository keeps blogs in insertion order. Ids have the same
// shape as the document store's so both drivers reject the same input.
type blogsMemoryRepository struct {
	mu    sync.RWMutex
	blogs []entity.Blog
	index map[string]int
	log   *logrus.Logger
}

func newBlogsMemoryRepository(log *logrus.Logger) *blogsMemoryRepository {
	return &blogsMemoryRepository{
		index: make(map[string]int),
		log:   log,
	}
}

func matchesListQuery(blog entity.Blog, q blogs.ListQuery) bool {
	if q.HasFilter() && blog.Category != q.Filter {
		return false
	}
	if !q.HasSearch() {
		return true
	}

	needle := strings.ToLower(q.Search)
	for _, field := range []string{blog.Title, blog.ShortDescription, blog.LongDescription} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (r *blogsMemoryRepository) CreateBlog(ctx context.Context, blog entity.Blog) (entity.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog.ID = primitive.NewObjectID().Hex()
	r.index[blog.ID] = len(r.blogs)
	r.blogs = append(r.blogs, blog)

	r.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"id":         blog.ID,
	}).Debug("Blog stored in memory")

	return entity.InsertResult{Acknowledged: true, InsertedID: blog.ID}, nil
}

func (r *blogsMemoryRepository) GetBlogByID(ctx context.Context, id string) (*entity.Blog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, blogs.ErrInvalidBlogID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	blog := r.blogs[i]
	return &blog, nil
}

func (r *blogsMemoryRepository) ListBlogs(ctx context.Context, q blogs.ListQuery) ([]entity.Blog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []entity.Blog
	for _, blog := range r.blogs {
		if matchesListQuery(blog, q) {
			matched = append(matched, blog)
		}
	}

	total := int64(len(matched))
	start := q.Skip()
	if start < 0 || start > total {
		start = total
	}
	end := start + q.Limit()
	if end < start || end > total {
		end = total
	}

	page := make([]entity.Blog, 0, end-start)
	page = append(page, matched[start:end]...)
	return page, total, nil
}

func (r *blogsMemoryRepository) UpsertBlog(ctx context.Context, id string, update entity.BlogUpdate) (entity.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return entity.UpdateResult{}, blogs.ErrInvalidBlogID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[id]; ok {
		before := r.blogs[i]
		after := before
		update.Apply(&after)
		r.blogs[i] = after

		var modified int64
		if after != before {
			modified = 1
		}
		return entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}

	blog := entity.Blog{ID: id, CreatedAt: time.Now()}
	update.Apply(&blog)
	r.index[id] = len(r.blogs)
	r.blogs = append(r.blogs, blog)

	return entity.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

func (r *blogsMemoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := []string{}
	for _, blog := range r.blogs {
		if blog.Category == "" {
			continue
		}
		if _, ok := seen[blog.Category]; ok {
			continue
		}
		seen[blog.Category] = struct{}{}
		categories = append(categories, blog.Category)
	}
	sort.Strings(categories)

	return categories, nil
}
