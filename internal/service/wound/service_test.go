package wound

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/repository/memory"
	redisRepo "github.com/jwalitptl/woundcare-api/internal/repository/redis"
	"github.com/jwalitptl/woundcare-api/internal/service/session"
	apperrors "github.com/jwalitptl/woundcare-api/pkg/errors"
)

func newService() *Service {
	repo := memory.NewSessionRepository(time.Hour, time.Hour)
	return NewService(session.NewService(repo, nil, zerolog.Nop()), nil)
}

func TestWoundEditsPersistAcrossCalls(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	_, err := svc.SelectOne(ctx, id, "location", model.LocationMalleolus)
	require.NoError(t, err)
	_, err = svc.SelectOne(ctx, id, "laterality", model.LateralityRight)
	require.NoError(t, err)
	_, err = svc.ToggleTag(ctx, id, "primary_dressing", "Hidrogel")
	require.NoError(t, err)

	w, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.LateralityRight, w.Laterality)
	assert.Equal(t, []string{"Hidrogel"}, w.PrimaryDressing)

	prompt, err := svc.Prompt(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Ubicación: Maléolo Derecha")
}

func TestWoundErrorsMapToStatus(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.SetField(ctx, uuid.New(), "colour", "red")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
}

func TestResetClearsFormAndNote(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	_, err := svc.SetField(ctx, id, "edema", "++")
	require.NoError(t, err)
	_, err = svc.sessions.Update(ctx, id, func(s *model.Session) error {
		s.WoundNote = model.GeneratedNote{Text: "nota"}
		return nil
	})
	require.NoError(t, err)

	w, err := svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.NewWoundRecord(), *w)

	sess, err := svc.sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, sess.WoundNote.Empty())
}

func TestStoreOutageIsServiceUnavailable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	repo, err := redisRepo.NewSessionRepository(ctx, redisRepo.Config{
		URL:        "redis://" + mr.Addr(),
		MaxRetries: -1,
		TTL:        time.Hour,
	}, nil, zerolog.Nop())
	require.NoError(t, err)
	svc := NewService(session.NewService(repo, nil, zerolog.Nop()), nil)
	mr.Close()

	id := uuid.New()
	for i := 1; i <= 7; i++ {
		_, err := svc.SetField(ctx, id, "size", "3x2 cm")
		appErr, ok := apperrors.As(err)
		require.True(t, ok, "call %d", i)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.StatusCode(), "call %d", i)
	}

	_, err = svc.Get(ctx, id)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.StatusCode())
}
