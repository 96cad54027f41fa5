package wound

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/woundcare-api/internal/form"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/serializer"
	"github.com/jwalitptl/woundcare-api/internal/service"
	"github.com/jwalitptl/woundcare-api/internal/service/session"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
)

type WoundService interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*model.WoundRecord, error)
	SetField(ctx context.Context, sessionID uuid.UUID, field string, value any) (*model.WoundRecord, error)
	SelectOne(ctx context.Context, sessionID uuid.UUID, field string, value any) (*model.WoundRecord, error)
	ToggleTag(ctx context.Context, sessionID uuid.UUID, field, option string) (*model.WoundRecord, error)
	Reset(ctx context.Context, sessionID uuid.UUID) (*model.WoundRecord, error)
	Prompt(ctx context.Context, sessionID uuid.UUID) (string, error)
}

type Service struct {
	sessions *session.Service
	metrics  *metrics.Metrics
}

func NewService(sessions *session.Service, m *metrics.Metrics) *Service {
	return &Service{sessions: sessions, metrics: m}
}

func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (*model.WoundRecord, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, service.AppError(err)
	}
	return &sess.Wound, nil
}

func (s *Service) SetField(ctx context.Context, sessionID uuid.UUID, field string, value any) (*model.WoundRecord, error) {
	return s.update(ctx, sessionID, "set", func(w model.WoundRecord) (model.WoundRecord, error) {
		return form.SetField(w, field, value)
	})
}

func (s *Service) SelectOne(ctx context.Context, sessionID uuid.UUID, field string, value any) (*model.WoundRecord, error) {
	return s.update(ctx, sessionID, "select", func(w model.WoundRecord) (model.WoundRecord, error) {
		return form.SelectOne(w, field, value)
	})
}

func (s *Service) ToggleTag(ctx context.Context, sessionID uuid.UUID, field, option string) (*model.WoundRecord, error) {
	return s.update(ctx, sessionID, "toggle", func(w model.WoundRecord) (model.WoundRecord, error) {
		return form.ToggleTag(w, field, option)
	})
}

// Reset clears the wound form and its generated note.
func (s *Service) Reset(ctx context.Context, sessionID uuid.UUID) (*model.WoundRecord, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *model.Session) error {
		sess.Wound = form.Reset()
		sess.WoundNote = model.GeneratedNote{}
		return nil
	})
	s.count("reset", err)
	if err != nil {
		return nil, service.AppError(err)
	}
	return &sess.Wound, nil
}

// Prompt returns the serialized wound form.
func (s *Service) Prompt(ctx context.Context, sessionID uuid.UUID) (string, error) {
	w, err := s.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return serializer.Wound(*w), nil
}

func (s *Service) update(ctx context.Context, sessionID uuid.UUID, op string, fn func(model.WoundRecord) (model.WoundRecord, error)) (*model.WoundRecord, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *model.Session) error {
		w, err := fn(sess.Wound)
		if err != nil {
			return err
		}
		sess.Wound = w
		return nil
	})
	s.count(op, err)
	if err != nil {
		return nil, service.AppError(err)
	}
	return &sess.Wound, nil
}

func (s *Service) count(op string, err error) {
	if s.metrics != nil {
		s.metrics.FormUpdates.WithLabelValues(string(model.DomainWound), op, metrics.Status(err)).Inc()
	}
}
