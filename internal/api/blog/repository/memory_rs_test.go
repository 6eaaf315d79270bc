package blogRepository

import (
	"fmt"
	"math"
	"testing"

	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

func newTestMemoryRepository(t *testing.T) *blogsMemoryRepository {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return newBlogsMemoryRepository(logger)
}

func seedBlogs(t *testing.T, r *blogsMemoryRepository, blogsToSeed ...entity.Blog) []string {
	t.Helper()
	ids := make([]string, 0, len(blogsToSeed))
	for _, b := range blogsToSeed {
		res, err := r.CreateBlog(context.Background(), b)
		require.NoError(t, err)
		require.True(t, res.Acknowledged)
		ids = append(ids, res.InsertedID)
	}
	return ids
}

func TestMemoryListBlogs_PagesPartitionResult(t *testing.T) {
	r := newTestMemoryRepository(t)
	for i := 0; i < 23; i++ {
		seedBlogs(t, r, entity.Blog{Title: fmt.Sprintf("post %d", i), Category: "Go"})
	}

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		list, total, err := r.ListBlogs(context.Background(), blogs.NewListQuery(page, 10, "", ""))
		require.NoError(t, err)
		assert.Equal(t, int64(23), total)

		for _, b := range list {
			assert.False(t, seen[b.ID], "blog %s returned on two pages", b.ID)
			seen[b.ID] = true
		}
	}
	assert.Len(t, seen, 23)

	list, total, err := r.ListBlogs(context.Background(), blogs.NewListQuery(4, 10, "", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryListBlogs_InsertionOrder(t *testing.T) {
	r := newTestMemoryRepository(t)
	ids := seedBlogs(t, r,
		entity.Blog{Title: "first"},
		entity.Blog{Title: "second"},
		entity.Blog{Title: "third"},
	)

	list, _, err := r.ListBlogs(context.Background(), blogs.NewListQuery(1, 10, "", ""))
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, b := range list {
		assert.Equal(t, ids[i], b.ID)
	}
}

func TestMemoryListBlogs_SearchIsCaseInsensitiveOr(t *testing.T) {
	r := newTestMemoryRepository(t)
	seedBlogs(t, r,
		entity.Blog{Title: "Learning GoLang", Category: "Go"},
		entity.Blog{Title: "Rust", ShortDescription: "not golang at all", Category: "Rust"},
		entity.Blog{Title: "Python", LongDescription: "GOLANG comparison", Category: "Python"},
		entity.Blog{Title: "Java", Category: "Java"},
	)

	list, total, err := r.ListBlogs(context.Background(), blogs.NewListQuery(1, 10, "", "golang"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)
}

func TestMemoryListBlogs_FilterIsExact(t *testing.T) {
	r := newTestMemoryRepository(t)
	seedBlogs(t, r,
		entity.Blog{Title: "a", Category: "Go"},
		entity.Blog{Title: "b", Category: "go"},
		entity.Blog{Title: "c", Category: "Golang"},
		entity.Blog{Title: "d", Category: "Go"},
	)

	list, total, err := r.ListBlogs(context.Background(), blogs.NewListQuery(1, 10, "Go", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, b := range list {
		assert.Equal(t, "Go", b.Category)
	}
}

func TestMemoryListBlogs_CountIgnoresPaging(t *testing.T) {
	r := newTestMemoryRepository(t)
	for i := 0; i < 12; i++ {
		category := "Go"
		if i%3 == 0 {
			category = "Rust"
		}
		seedBlogs(t, r, entity.Blog{Title: fmt.Sprintf("post %d", i), Category: category})
	}

	_, small, err := r.ListBlogs(context.Background(), blogs.NewListQuery(1, 2, "Go", ""))
	require.NoError(t, err)
	_, large, err := r.ListBlogs(context.Background(), blogs.NewListQuery(3, 50, "Go", ""))
	require.NoError(t, err)

	assert.Equal(t, int64(8), small)
	assert.Equal(t, small, large)
}

func TestMemoryGetBlogByID(t *testing.T) {
	r := newTestMemoryRepository(t)
	ids := seedBlogs(t, r, entity.Blog{Title: "hello"})

	blog, err := r.GetBlogByID(context.Background(), ids[0])
	require.NoError(t, err)
	require.NotNil(t, blog)
	assert.Equal(t, "hello", blog.Title)

	missing, err := r.GetBlogByID(context.Background(), primitive.NewObjectID().Hex())
	assert.NoError(t, err)
	assert.Nil(t, missing)

	_, err = r.GetBlogByID(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, blogs.ErrInvalidBlogID)
}

func TestMemoryUpsertBlog_UpdatesOnlyGivenFields(t *testing.T) {
	r := newTestMemoryRepository(t)
	ids := seedBlogs(t, r, entity.Blog{Title: "old", Category: "Go", Image: "a.png"})

	title := "new"
	res, err := r.UpsertBlog(context.Background(), ids[0], entity.BlogUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.Nil(t, res.UpsertedID)

	blog, err := r.GetBlogByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "new", blog.Title)
	assert.Equal(t, "Go", blog.Category)
	assert.Equal(t, "a.png", blog.Image)

	res, err = r.UpsertBlog(context.Background(), ids[0], entity.BlogUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(0), res.ModifiedCount)
}

func TestMemoryUpsertBlog_InsertsUnknownID(t *testing.T) {
	r := newTestMemoryRepository(t)
	id := primitive.NewObjectID().Hex()
	category := "Cloud"

	res, err := r.UpsertBlog(context.Background(), id, entity.BlogUpdate{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
	assert.Equal(t, int64(1), res.UpsertedCount)
	require.NotNil(t, res.UpsertedID)
	assert.Equal(t, id, *res.UpsertedID)

	blog, err := r.GetBlogByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, blog)
	assert.Equal(t, "Cloud", blog.Category)
	assert.Empty(t, blog.Title)
}

func TestMemoryListCategories(t *testing.T) {
	r := newTestMemoryRepository(t)
	seedBlogs(t, r,
		entity.Blog{Category: "Rust"},
		entity.Blog{Category: "Go"},
		entity.Blog{Category: "Rust"},
		entity.Blog{Category: ""},
	)

	categories, err := r.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, categories)
}

func TestMemoryListBlogs_HugePage(t *testing.T) {
	r := newTestMemoryRepository(t)
	seedBlogs(t, r, entity.Blog{Title: "a"}, entity.Blog{Title: "b"})

	list, total, err := r.ListBlogs(context.Background(), blogs.NewListQuery(math.MaxInt, 10, "", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, list)

	// an unclamped query with an overflowing skip still yields an empty page
	unclamped := blogs.ListQuery{Page: math.MaxInt, Size: math.MaxInt}
	require.Less(t, unclamped.Skip(), int64(0))

	list, total, err = r.ListBlogs(context.Background(), unclamped)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, list)
}
