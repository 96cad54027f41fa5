// Package memory keeps sessions in process memory with a TTL.
package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/repository"
)

type sessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSessionRepository returns a go-cache backed store.
func NewSessionRepository(ttl, cleanupInterval time.Duration) repository.SessionRepository {
	return &sessionRepository{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (r *sessionRepository) Get(_ context.Context, id uuid.UUID) (*model.Session, error) {
	v, ok := r.cache.Get(id.String())
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return v.(*model.Session).Clone(), nil
}

func (r *sessionRepository) Save(_ context.Context, session *model.Session) error {
	r.cache.Set(session.ID.String(), session.Clone(), r.ttl)
	return nil
}

func (r *sessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *sessionRepository) Ping(context.Context) error {
	return nil
}
