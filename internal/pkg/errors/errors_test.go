package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := Wrap(cause, "failed to get admin by email")

	assert.Equal(t, "failed to get admin by email", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "INTERNAL_ERROR", err.Code)
}

func TestDatabaseMatchesSentinelAndCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Database(cause, "failed to list projects")

	assert.Equal(t, "failed to list projects", err.Error())
	assert.True(t, Is(err, ErrDatabaseError))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "DATABASE_ERROR", err.Code)
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("Project", 5)

	assert.Equal(t, "Project #5 not found", err.Error())
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrInvalidInput))
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Invalid("type must be one of WORK, INTERNSHIP"))

	assert.Equal(t, "type must be one of WORK, INTERNSHIP", Message(wrapped, "fallback"))
	assert.Equal(t, "fallback", Message(stderrors.New("boom"), "fallback"))
	assert.True(t, Is(wrapped, ErrInvalidInput))
}

func TestUnauthorized(t *testing.T) {
	err := Unauthorized(InvalidCredentialsMessage)

	assert.True(t, Is(err, ErrUnauthorized))
	assert.Equal(t, "Invalid credentials", err.Error())
}
