package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/repository/memory"
)

func newService() *Service {
	return NewService(memory.NewSessionRepository(time.Hour, time.Hour), nil, zerolog.Nop())
}

func TestGetReturnsEmptySessionForUnknownID(t *testing.T) {
	id := uuid.New()
	sess, err := newService().Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, sess.ID)
	assert.Empty(t, sess.Devices.Devices)
}

func TestUpdatePersists(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	_, err := svc.Update(ctx, id, func(s *model.Session) error {
		s.Wound.Size = "2x3 cm"
		return nil
	})
	require.NoError(t, err)

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2x3 cm", sess.Wound.Size)
}

func TestFailedUpdateStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	_, err := svc.Update(ctx, id, func(s *model.Session) error {
		s.Wound.Size = "lost"
		return errors.New("rejected")
	})
	require.Error(t, err)

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, sess.Wound.Size)
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Update(ctx, id, func(s *model.Session) error {
				s.Wound.BedAppearance = append(s.Wound.BedAppearance, "x")
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sess.Wound.BedAppearance, 50)
}

func TestEndDiscardsSession(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	_, err := svc.Update(ctx, id, func(s *model.Session) error {
		s.Wound.Size = "2x3 cm"
		s.WoundNote = model.GeneratedNote{Text: "nota"}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.End(ctx, id))
	sess, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, sess.Wound.Size)
	assert.True(t, sess.WoundNote.Empty())

	assert.NoError(t, svc.End(ctx, uuid.New()))
}
