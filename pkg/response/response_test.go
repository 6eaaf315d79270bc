package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsIdentityAndCause(t *testing.T) {
	declared := NewError(http.StatusInternalServerError, "failed to list blogs")
	cause := errors.New("connection refused")

	err := Wrap(declared, cause)

	assert.ErrorIs(t, err, declared)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to list blogs", err.Error())

	var respErr *Error
	assert.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusInternalServerError, respErr.Code)
	assert.Equal(t, "failed to list blogs: connection refused", respErr.Detail())
}

func TestWrap_UndeclaredIsReturnedAsIs(t *testing.T) {
	plain := errors.New("plain")
	assert.Equal(t, plain, Wrap(plain, errors.New("cause")))
}

func TestIs_ComparesCodeAndMessage(t *testing.T) {
	a := NewError(http.StatusBadRequest, "invalid blog id")
	b := NewError(http.StatusBadRequest, "invalid blog id")
	c := NewError(http.StatusNotFound, "invalid blog id")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}
