package commentRepository

import (
	"testing"

	"TechTalks/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/context"
)

func newTestMemoryRepository() *commentsMemoryRepository {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return newCommentsMemoryRepository(logger)
}

func TestMemoryListComments_EmptyIsNotNil(t *testing.T) {
	r := newTestMemoryRepository()

	all, err := r.ListComments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	byBlog, err := r.ListCommentsByBlogID(context.Background(), "anything")
	require.NoError(t, err)
	assert.NotNil(t, byBlog)
	assert.Empty(t, byBlog)
}

func TestMemoryListCommentsByBlogID(t *testing.T) {
	r := newTestMemoryRepository()
	ctx := context.Background()

	for _, c := range []entity.Comment{
		{BlogID: "blog-1", Text: "first"},
		{BlogID: "blog-2", Text: "other"},
		{BlogID: "blog-1", Text: "second"},
	} {
		res, err := r.CreateComment(ctx, c)
		require.NoError(t, err)
		assert.NotEmpty(t, res.InsertedID)
	}

	list, err := r.ListCommentsByBlogID(ctx, "blog-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)

	all, err := r.ListComments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "other", all[1].Text)
}

func TestBuildBlogIDFilter(t *testing.T) {
	assert.Equal(t, bson.M{"blog_Id": "abc"}, buildBlogIDFilter("abc"))
}
