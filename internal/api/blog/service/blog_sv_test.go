package blogService

import (
	"errors"
	"net/http"
	"testing"

	"TechTalks/internal/api/blog"
	blogsRepository "TechTalks/internal/api/blog/repository"
	"TechTalks/internal/entity"
	"TechTalks/pkg/response"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type mockBlogStore struct {
	mock.Mock
}

func (m *mockBlogStore) CreateBlog(ctx context.Context, blog entity.Blog) (entity.InsertResult, error) {
	args := m.Called(blog.Title)
	return args.Get(0).(entity.InsertResult), args.Error(1)
}

func (m *mockBlogStore) GetBlogByID(ctx context.Context, id string) (*entity.Blog, error) {
	args := m.Called(id)
	blog, _ := args.Get(0).(*entity.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogStore) ListBlogs(ctx context.Context, query blogs.ListQuery) ([]entity.Blog, int64, error) {
	args := m.Called(query)
	list, _ := args.Get(0).([]entity.Blog)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogStore) UpsertBlog(ctx context.Context, id string, update entity.BlogUpdate) (entity.UpdateResult, error) {
	args := m.Called(id, update)
	return args.Get(0).(entity.UpdateResult), args.Error(1)
}

func (m *mockBlogStore) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called()
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

type stubRepository struct {
	store     *mockBlogStore
	committed bool
}

func (r *stubRepository) NewClient(tx bool) (blogsRepository.Client, error) {
	return blogsRepository.Client{
		Blogs: r.store,
		Commit: func() error {
			r.committed = true
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}

func newTestService() (IBlogsService, *stubRepository) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	repo := &stubRepository{store: new(mockBlogStore)}
	return NewBlogsService(logger, repo), repo
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	var respErr *response.Error
	require.True(t, errors.As(err, &respErr), "expected *response.Error, got %T", err)
	assert.Equal(t, code, respErr.Code)
}

func TestCreateBlog(t *testing.T) {
	svc, repo := newTestService()
	repo.store.On("CreateBlog", "Hello").Return(entity.InsertResult{Acknowledged: true, InsertedID: "id-1"}, nil)

	res, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{Title: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", res.InsertedID)
	assert.True(t, repo.committed)

	repo.store.AssertExpectations(t)
}

func TestCreateBlog_StoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.store.On("CreateBlog", "Hello").Return(entity.InsertResult{}, errors.New("connection reset"))

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{Title: "Hello"})
	assert.ErrorIs(t, err, blogs.ErrCreateBlog)
	assertStatus(t, err, http.StatusInternalServerError)
	assert.False(t, repo.committed)
}

func TestGetBlogByID_Missing(t *testing.T) {
	svc, repo := newTestService()
	repo.store.On("GetBlogByID", "abc").Return(nil, nil)

	blog, err := svc.GetBlogByID(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Nil(t, blog)
}

func TestGetBlogByID_MalformedIDKeepsStatus(t *testing.T) {
	svc, repo := newTestService()
	repo.store.On("GetBlogByID", "bad").Return(nil, blogs.ErrInvalidBlogID)

	_, err := svc.GetBlogByID(context.Background(), "bad")
	assert.ErrorIs(t, err, blogs.ErrInvalidBlogID)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestListBlogs(t *testing.T) {
	svc, repo := newTestService()
	query := blogs.NewListQuery(2, 3, "Go", "fiber")
	repo.store.On("ListBlogs", query).Return([]entity.Blog{{ID: "1"}, {ID: "2"}}, int64(8), nil)

	res, err := svc.ListBlogs(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, res.Blogs, 2)
	assert.Equal(t, int64(8), res.Count)
}

func TestListBlogs_EmptyPageIsNotNil(t *testing.T) {
	svc, repo := newTestService()
	query := blogs.NewListQuery(9, 10, "", "")
	repo.store.On("ListBlogs", query).Return(nil, int64(4), nil)

	res, err := svc.ListBlogs(context.Background(), query)
	require.NoError(t, err)
	assert.NotNil(t, res.Blogs)
	assert.Empty(t, res.Blogs)
	assert.Equal(t, int64(4), res.Count)
}

func TestListBlogs_StoreFailure(t *testing.T) {
	svc, repo := newTestService()
	query := blogs.NewListQuery(1, 10, "", "")
	repo.store.On("ListBlogs", query).Return(nil, int64(0), errors.New("timeout"))

	_, err := svc.ListBlogs(context.Background(), query)
	assert.ErrorIs(t, err, blogs.ErrListBlogs)
	assertStatus(t, err, http.StatusInternalServerError)
}

func TestUpdateBlog_EmptyUpdate(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.UpdateBlog(context.Background(), "abc", blogs.UpdateBlogRequest{})
	assert.ErrorIs(t, err, blogs.ErrEmptyUpdate)
	repo.store.AssertNotCalled(t, "UpsertBlog", mock.Anything, mock.Anything)
}

func TestUpdateBlog_Upsert(t *testing.T) {
	svc, repo := newTestService()
	title := "new"
	id := "abc"
	req := blogs.UpdateBlogRequest{UpdatedTitle: &title}
	repo.store.On("UpsertBlog", id, req.ToEntity()).
		Return(entity.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil)

	res, err := svc.UpdateBlog(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.True(t, repo.committed)
}

func TestGetAllCategories_StoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.store.On("ListCategories").Return(nil, errors.New("boom"))

	_, err := svc.GetAllCategories(context.Background())
	assert.ErrorIs(t, err, blogs.ErrListCategories)
}
