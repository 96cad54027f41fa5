package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		err  *AppError
		want int
	}{
		{NotFound("device", cause), http.StatusNotFound},
		{BadRequest("bad", cause), http.StatusBadRequest},
		{Conflict("busy", nil), http.StatusConflict},
		{Unprocessable("missing", nil), http.StatusUnprocessableEntity},
		{Unavailable("down", cause), http.StatusServiceUnavailable},
		{Generation("Error de conexión.", nil, cause), http.StatusBadGateway},
		{Internal(cause), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.StatusCode(), tt.err.Message)
	}
}

func TestAsFindsWrappedError(t *testing.T) {
	err := fmt.Errorf("update wound: %w", BadRequest("bad field", nil))
	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, ErrBadRequest, appErr.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorIncludesCause(t *testing.T) {
	err := NotFound("device", errors.New("no such id"))
	assert.Equal(t, "device not found: no such id", err.Error())
	assert.ErrorContains(t, errors.Unwrap(err), "no such id")
}
