package blogs

import (
	"TechTalks/pkg/response"
	"net/http"
)

var (
	ErrInvalidBlogID   = response.NewError(http.StatusBadRequest, "invalid blog id")
	ErrInvalidBlogData = response.NewError(http.StatusBadRequest, "invalid blog data")
	ErrEmptyUpdate     = response.NewError(http.StatusBadRequest, "no blog fields to update")
	ErrCreateBlog      = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrGetBlog         = response.NewError(http.StatusInternalServerError, "failed to get blog")
	ErrListBlogs       = response.NewError(http.StatusInternalServerError, "failed to list blogs")
	ErrUpdateBlog      = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrListCategories  = response.NewError(http.StatusInternalServerError, "failed to list blog categories")
)
