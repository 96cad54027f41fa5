package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/woundcare-api/internal/form"
	"github.com/jwalitptl/woundcare-api/internal/repository"
	"github.com/jwalitptl/woundcare-api/pkg/circuitbreaker"
	apperrors "github.com/jwalitptl/woundcare-api/pkg/errors"
)

func TestAppError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: colour", form.ErrUnknownField), http.StatusBadRequest},
		{fmt.Errorf("%w: bad", form.ErrInvalidValue), http.StatusBadRequest},
		{fmt.Errorf("%w: x", form.ErrDeviceNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: 9", form.ErrLumenNotFound), http.StatusNotFound},
		{apperrors.Conflict("busy", nil), http.StatusConflict},
		{fmt.Errorf("failed to load session: %w", fmt.Errorf("%w: dial tcp: connection refused", repository.ErrStoreUnavailable)), http.StatusServiceUnavailable},
		{fmt.Errorf("failed to save session: %w", circuitbreaker.ErrOpen), http.StatusServiceUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		appErr, ok := apperrors.As(AppError(tt.err))
		require.True(t, ok)
		assert.Equal(t, tt.want, appErr.StatusCode(), tt.err.Error())
	}
	assert.NoError(t, AppError(nil))
}
