package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jwalitptl/woundcare-api/internal/model"
)

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrStoreUnavailable wraps failures to reach the session store.
	ErrStoreUnavailable = errors.New("session store unavailable")
)

type (
	// SessionRepository stores whole sessions keyed by id. Every Save refreshes the TTL.
	SessionRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
		Save(ctx context.Context, session *model.Session) error
		Delete(ctx context.Context, id uuid.UUID) error
		Ping(ctx context.Context) error
	}
)
