package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsSentinelIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.Equal(t, "title is required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), err.ErrorCode())
}

func TestBaseError_DistinctSentinelsDoNotMatch(t *testing.T) {
	err := ErrValidationFailed.WithDetails("tag name must not be blank")

	assert.False(t, stderrors.Is(err, ErrTagNotFound))
	assert.False(t, stderrors.Is(err, ErrNotFound))
}

func TestBaseError_WrapMessageKeepsSentinelIdentity(t *testing.T) {
	err := ErrUserCreationFailed.WrapMessage("not-null constraint violated")

	assert.True(t, stderrors.Is(err, ErrUserCreationFailed))
}

func TestBaseError_IsRejectsPlainErrors(t *testing.T) {
	assert.False(t, stderrors.Is(stderrors.New("validation failed"), ErrValidationFailed))
}
