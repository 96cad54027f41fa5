// Package service holds helpers shared by the domain services.
package service

import (
	"errors"

	"github.com/jwalitptl/woundcare-api/internal/form"
	"github.com/jwalitptl/woundcare-api/internal/repository"
	"github.com/jwalitptl/woundcare-api/pkg/circuitbreaker"
	apperrors "github.com/jwalitptl/woundcare-api/pkg/errors"
)

// AppError converts form and storage failures into API errors. Errors that are
// already *AppError pass through unchanged.
func AppError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, form.ErrDeviceNotFound):
		return apperrors.NotFound("device", err)
	case errors.Is(err, form.ErrLumenNotFound):
		return apperrors.NotFound("lumen", err)
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, form.ErrInvalidValue):
		return apperrors.BadRequest(err.Error(), err)
	case errors.Is(err, repository.ErrSessionNotFound):
		return apperrors.NotFound("session", err)
	case errors.Is(err, repository.ErrStoreUnavailable), errors.Is(err, circuitbreaker.ErrOpen):
		return apperrors.Unavailable("session store unavailable", err)
	}
	return apperrors.Internal(err)
}
