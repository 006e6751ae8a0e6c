package errors

import (
	"net/http"
	"testing"

	"herbal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrPlantNotFound.WrapMessage("get plant")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "PLANT_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrPlantNotFound))
}

func TestBaseError_WithDetailsCopies(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("limit must be positive")

	assert.Equal(t, "limit must be positive", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.HTTPCode(), detailed.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to find account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}
