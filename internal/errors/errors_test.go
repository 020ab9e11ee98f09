package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "project"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrSectionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrAdminAlreadyAssigned))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestEmailSpaceExhaustedError(t *testing.T) {
	err := &EmailSpaceExhaustedError{LocalPart: "jane.doe", Attempts: 3}
	assert.Equal(t, `could not derive a unique email for "jane.doe" after 3 attempts`, err.Error())
	assert.True(t, IsEmailSpaceExhausted(fmt.Errorf("generate users: %w", err)))
	assert.False(t, IsEmailSpaceExhausted(ErrUserExists))
}

func TestPersistenceError(t *testing.T) {
	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := errors.New("duplicate key value")
		err := NewPersistenceError("create", "task", cause)

		assert.Equal(t, "failed to create task: duplicate key value", err.Error())
		assert.True(t, IsPersistence(err))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewPersistenceError("create", "task", nil))
	})

	t.Run("keeps typed cause", func(t *testing.T) {
		err := NewPersistenceError("create", "user", ErrUserExists)
		assert.True(t, IsAlreadyExists(err))
	})
}

func TestValidationAndConfigurationErrors(t *testing.T) {
	assert.Equal(t, "validation error: total_users - must be positive", NewValidationError("total_users", "must be positive").Error())
	assert.Equal(t, "validation error: bad input", NewValidationError("", "bad input").Error())
	assert.True(t, IsValidation(NewValidationError("x", "y")))
	assert.True(t, IsConfiguration(NewConfigurationError("missing key")))
	assert.False(t, IsConfiguration(ErrNoCompanyNames))
}
