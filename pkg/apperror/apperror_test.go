package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := NewConflict("Custom link already in use.", nil)
	assert.Equal(t, "Custom link already in use.", err.Error())

	wrapped := NewInternal("failed to save image", errors.New("disk full"))
	assert.Equal(t, "failed to save image: disk full", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("unique constraint")
	err := NewConflict("Username already exists!", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, 400},
		{KindAuth, 401},
		{KindNotFound, 404},
		{KindConflict, 409},
		{KindInternal, 500},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.Status())
			assert.Equal(t, tt.status, New(tt.kind, "m", nil).Status())
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NewNotFound("Image not found", nil)))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	// Kind survives wrapping by callers.
	wrapped := fmt.Errorf("upload: %w", NewConflict("taken", nil))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, IsConflict(wrapped))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Image not found", UserMessage(NewNotFound("Image not found", nil)))
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(errors.New("pq: boom")))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("No file part", nil)))
	assert.True(t, IsAuth(NewAuth("Invalid username or password", nil)))
	assert.False(t, IsNotFound(NewAuth("Invalid username or password", nil)))
	assert.False(t, IsConflict(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "conflict", KindConflict.String())
	k, err := KindString("notfound")
	assert.NoError(t, err)
	assert.Equal(t, KindNotFound, k)
}
