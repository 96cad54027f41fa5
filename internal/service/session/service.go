package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/repository"
	"github.com/jwalitptl/woundcare-api/pkg/logger"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
)

const lockStripes = 64

// Service loads and mutates sessions. Updates to one session are serialised;
// reads return snapshots.
type Service struct {
	repo    repository.SessionRepository
	locks   [lockStripes]sync.Mutex
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewService(repo repository.SessionRepository, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
		logger:  logger.With().Str("component", "session_service").Logger(),
	}
}

func (s *Service) lock(id uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write(id[:])
	return &s.locks[h.Sum32()%lockStripes]
}

// Get returns the session, or a fresh empty one if none is stored yet.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return model.NewSession(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// Update applies fn to the session under its lock and stores the result. When fn
// fails nothing is stored.
func (s *Service) Update(ctx context.Context, id uuid.UUID, fn func(*model.Session) error) (*model.Session, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.repo.Get(ctx, id)
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		sess = model.NewSession(id)
		if s.metrics != nil {
			s.metrics.SessionsCreated.Inc()
		}
		log := logger.FromContext(ctx, s.logger)
		log.Debug().Str("session_id", id.String()).Msg("session created")
	case err != nil:
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// End discards every form and note stored for the session. The id stays usable
// and starts over empty.
func (s *Service) End(ctx context.Context, id uuid.UUID) error {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	log := logger.FromContext(ctx, s.logger)
	log.Debug().Str("session_id", id.String()).Msg("session ended")
	return nil
}

// Ping checks the session store.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
