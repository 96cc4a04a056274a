package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{err: BadRequest("BAD", "bad"), status: http.StatusBadRequest},
		{err: Unauthorized("UNAUTHORIZED", "who are you"), status: http.StatusUnauthorized},
		{err: Forbidden("FORBIDDEN", "no"), status: http.StatusForbidden},
		{err: NotFound("NOT_FOUND", "gone"), status: http.StatusNotFound},
		{err: Conflict("CONFLICT", "taken"), status: http.StatusConflict},
		{err: &Error{Code: "INTERNAL", Message: "boom"}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status())
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestAs_ThroughWrapping(t *testing.T) {
	sentinel := NotFound("FRANCHISE_NOT_FOUND", "franchise not found")
	wrapped := fmt.Errorf("s.repo.FindByID -> %w", sentinel)

	got, ok := As(wrapped)
	assert.True(t, ok)
	assert.Same(t, sentinel, got)
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, KindNotFound, got.Kind)
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
}
