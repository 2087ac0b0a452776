package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfWalksTheChain(t *testing.T) {
	base := New(CodeNotFound, "draft not found")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(wrapped, CodeConflict))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, CodeInternal, "failed to save draft")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal_error: failed to save draft: disk full", err.Error())
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:         http.StatusBadRequest,
		CodeInvalidInput:       http.StatusBadRequest,
		CodeValidation:         http.StatusUnprocessableEntity,
		CodeInvariantViolation: http.StatusUnprocessableEntity,
		CodeNotFound:           http.StatusNotFound,
		CodeConflict:           http.StatusConflict,
		CodeUpstream:           http.StatusBadGateway,
		CodeRateLimited:        http.StatusTooManyRequests,
		CodeTimeout:            http.StatusGatewayTimeout,
		CodeInternal:           http.StatusInternalServerError,
		Code("mystery"):        http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, ToHTTPStatus(code), string(code))
	}
}
