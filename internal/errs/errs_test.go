package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	wrapped := errors.Wrap(ErrUserNotFound.WithMessage("no such user: 42"), "get profile")

	assert.True(t, errors.Is(wrapped, ErrUserNotFound))
	assert.False(t, errors.Is(wrapped, ErrProductNotFound))
	assert.False(t, errors.Is(errors.New("plain"), ErrUserNotFound))
}

func TestBadRequestKeepsStatus(t *testing.T) {
	err := BadRequest("title is required")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "title is required", err.Error())
	assert.Equal(t, "invalid request", ErrBadRequest.Message)
}
