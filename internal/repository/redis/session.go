// Package redis stores sessions as JSON values in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/repository"
	"github.com/jwalitptl/woundcare-api/pkg/circuitbreaker"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
	"github.com/jwalitptl/woundcare-api/pkg/security"
)

const keyPrefix = "woundcare:session:"

type Config struct {
	URL          string
	MaxRetries   int
	RetryBackoff time.Duration
	PoolSize     int
	MinIdleConns int
	TTL          time.Duration
	// Encryptor seals stored sessions. Nil stores plain JSON.
	Encryptor security.Encryptor
}

type sessionRepository struct {
	client  *redis.Client
	cb      *circuitbreaker.CircuitBreaker
	ttl     time.Duration
	enc     security.Encryptor
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewSessionRepository connects to Redis and verifies the connection.
func NewSessionRepository(ctx context.Context, config Config, m *metrics.Metrics, logger zerolog.Logger) (repository.SessionRepository, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.MaxRetries = config.MaxRetries
	opts.MinRetryBackoff = config.RetryBackoff
	if config.PoolSize > 0 {
		opts.PoolSize = config.PoolSize
	}
	opts.MinIdleConns = config.MinIdleConns

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newSessionRepository(client, config.TTL, config.Encryptor, m, logger), nil
}

func newSessionRepository(client *redis.Client, ttl time.Duration, enc security.Encryptor, m *metrics.Metrics, logger zerolog.Logger) *sessionRepository {
	logger = logger.With().Str("component", "redis_sessions").Logger()
	cb := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
		Name:        "redis-sessions",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     5 * time.Second,
		MaxFailures: 5,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, repository.ErrSessionNotFound)
		},
		OnStateChange: func(name, from, to string) {
			logger.Warn().Str("breaker", name).Str("from", from).Str("to", to).Msg("circuit breaker state changed")
		},
	})
	return &sessionRepository{client: client, cb: cb, ttl: ttl, enc: enc, metrics: m, logger: logger}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// storeErr marks connection failures and an open breaker as ErrStoreUnavailable.
func storeErr(err error) error {
	var netErr net.Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, circuitbreaker.ErrOpen),
		errors.Is(err, redis.ErrClosed),
		errors.Is(err, io.EOF),
		errors.As(err, &netErr):
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	return err
}

func (r *sessionRepository) observe(op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	status := metrics.Status(err)
	if errors.Is(err, repository.ErrSessionNotFound) {
		status = "miss"
	}
	r.metrics.SessionOperations.WithLabelValues(op, status).Inc()
	r.metrics.SessionLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (session *model.Session, err error) {
	defer func(start time.Time) { r.observe("get", start, err) }(time.Now())
	err = r.cb.Execute(func() error {
		raw, err := r.client.Get(ctx, key(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return repository.ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		if r.enc != nil {
			if raw, err = r.enc.Decrypt(raw); err != nil {
				return fmt.Errorf("failed to open session: %w", err)
			}
		}
		session = &model.Session{}
		return json.Unmarshal(raw, session)
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *model.Session) (err error) {
	defer func(start time.Time) { r.observe("save", start, err) }(time.Now())
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if r.enc != nil {
		if payload, err = r.enc.Encrypt(payload); err != nil {
			return fmt.Errorf("failed to seal session: %w", err)
		}
	}
	return storeErr(r.cb.Execute(func() error {
		return r.client.Set(ctx, key(session.ID), payload, r.ttl).Err()
	}))
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer func(start time.Time) { r.observe("delete", start, err) }(time.Now())
	return storeErr(r.cb.Execute(func() error {
		return r.client.Del(ctx, key(id)).Err()
	}))
}

func (r *sessionRepository) Ping(ctx context.Context) error {
	return storeErr(r.client.Ping(ctx).Err())
}
