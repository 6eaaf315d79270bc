package comments

import (
	"TechTalks/pkg/response"
	"net/http"
)

var (
	ErrInvalidCommentData = response.NewError(http.StatusBadRequest, "invalid comment data")
	ErrCreateComment      = response.NewError(http.StatusInternalServerError, "failed to create comment")
	ErrListComments       = response.NewError(http.StatusInternalServerError, "failed to list comments")
)
