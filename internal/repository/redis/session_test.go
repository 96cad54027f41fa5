package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/woundcare-api/internal/form"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/repository"
	"github.com/jwalitptl/woundcare-api/pkg/circuitbreaker"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
	"github.com/jwalitptl/woundcare-api/pkg/security"
)

func setup(t *testing.T) (*miniredis.Miniredis, repository.SessionRepository, *metrics.Metrics) {
	t.Helper()
	mr := miniredis.RunT(t)
	m := metrics.NewMetrics(prometheus.NewRegistry(), "woundcare", "test")
	repo, err := NewSessionRepository(context.Background(), Config{
		URL: "redis://" + mr.Addr(),
		TTL: time.Hour,
	}, m, zerolog.Nop())
	require.NoError(t, err)
	return mr, repo, m
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, repo, m := setup(t)

	s := model.NewSession(uuid.New())
	s.Wound.Location = model.LocationHeel
	s.Wound.Laterality = model.LateralityLeft
	s.Devices.Devices, _ = form.AddDevice(s.Devices.Devices)
	s.WoundNote = model.GeneratedNote{Text: "Nota", GeneratedAt: time.Now().UTC()}

	require.NoError(t, repo.Save(ctx, s))
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Wound, got.Wound)
	require.Len(t, got.Devices.Devices, 1)
	assert.Equal(t, s.Devices.Devices[0].ID, got.Devices.Devices[0].ID)
	assert.Equal(t, "Nota", got.WoundNote.Text)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionOperations.WithLabelValues("save", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionOperations.WithLabelValues("get", "success")))
}

func TestSessionMissAndDelete(t *testing.T) {
	ctx := context.Background()
	_, repo, m := setup(t)

	_, err := repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionOperations.WithLabelValues("get", "miss")))

	s := model.NewSession(uuid.New())
	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err = repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionTTL(t *testing.T) {
	ctx := context.Background()
	mr, repo, _ := setup(t)

	s := model.NewSession(uuid.New())
	require.NoError(t, repo.Save(ctx, s))
	assert.Equal(t, time.Hour, mr.TTL(key(s.ID)))

	mr.FastForward(2 * time.Hour)
	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestPingFailsWhenRedisIsDown(t *testing.T) {
	mr, repo, _ := setup(t)
	require.NoError(t, repo.Ping(context.Background()))

	mr.Close()
	assert.ErrorIs(t, repo.Ping(context.Background()), repository.ErrStoreUnavailable)
}

func TestOutageIsReportedAsUnavailable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	repo, err := NewSessionRepository(ctx, Config{
		URL:        "redis://" + mr.Addr(),
		MaxRetries: -1,
		TTL:        time.Hour,
	}, nil, zerolog.Nop())
	require.NoError(t, err)
	mr.Close()

	s := model.NewSession(uuid.New())
	for i := 1; i <= 7; i++ {
		err = repo.Save(ctx, s)
		require.ErrorIs(t, err, repository.ErrStoreUnavailable, "call %d", i)
	}
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)

	_, err = repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionsAreSealedAtRest(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	enc, err := security.NewEncryptorFromSecret("secret", "sessions")
	require.NoError(t, err)

	repo, err := NewSessionRepository(ctx, Config{
		URL:       "redis://" + mr.Addr(),
		TTL:       time.Hour,
		Encryptor: enc,
	}, nil, zerolog.Nop())
	require.NoError(t, err)

	s := model.NewSession(uuid.New())
	s.Wound.Location = model.LocationSacrum
	require.NoError(t, repo.Save(ctx, s))

	raw, err := mr.Get(key(s.ID))
	require.NoError(t, err)
	assert.NotContains(t, raw, model.LocationSacrum)

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LocationSacrum, got.Wound.Location)
}
