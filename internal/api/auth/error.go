package auth

import (
	"TechTalks/pkg/response"
	"net/http"
)

var (
	ErrInvalidClaims = response.NewError(http.StatusBadRequest, "token payload must be a JSON object")
	ErrIssueToken    = response.NewError(http.StatusInternalServerError, "failed to issue token")
	ErrRevokeToken   = response.NewError(http.StatusInternalServerError, "failed to revoke token")
)
