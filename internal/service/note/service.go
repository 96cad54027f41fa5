// Package note turns the session forms into generated clinical notes.
package note

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/woundcare-api/internal/llm"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/serializer"
	"github.com/jwalitptl/woundcare-api/internal/service"
	"github.com/jwalitptl/woundcare-api/internal/service/session"
	apperrors "github.com/jwalitptl/woundcare-api/pkg/errors"
	"github.com/jwalitptl/woundcare-api/pkg/logger"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
	"github.com/jwalitptl/woundcare-api/pkg/validator"
)

// FailureMessage is the only generation error ever shown to the user.
const FailureMessage = "Error de conexión."

type NoteService interface {
	Generate(ctx context.Context, sessionID uuid.UUID, domain model.Domain) (*model.GeneratedNote, error)
	Note(ctx context.Context, sessionID uuid.UUID, domain model.Domain) (*model.GeneratedNote, error)
}

type Config struct {
	// InFlightTTL bounds how long a generation blocks a second one for the same
	// session and domain if the first never releases its slot.
	InFlightTTL time.Duration
}

type Service struct {
	sessions  *session.Service
	generator llm.Generator
	validator validator.Validator
	inflight  *cache.Cache
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewService(sessions *session.Service, generator llm.Generator, v validator.Validator, cfg Config, m *metrics.Metrics, logger zerolog.Logger) *Service {
	if cfg.InFlightTTL <= 0 {
		cfg.InFlightTTL = 5 * time.Minute
	}
	return &Service{
		sessions:  sessions,
		generator: generator,
		validator: v,
		inflight:  cache.New(cfg.InFlightTTL, cfg.InFlightTTL),
		metrics:   m,
		logger:    logger.With().Str("component", "note_service").Logger(),
	}
}

// Generate serializes the domain form, asks the generator for a note and stores
// it on the session. A failed generation leaves the session untouched.
func (s *Service) Generate(ctx context.Context, sessionID uuid.UUID, domain model.Domain) (*model.GeneratedNote, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, service.AppError(err)
	}

	prompt, instruction, err := s.prepare(sess, domain)
	if err != nil {
		return nil, err
	}

	key := sessionID.String() + ":" + string(domain)
	if err := s.inflight.Add(key, struct{}{}, cache.DefaultExpiration); err != nil {
		return nil, apperrors.Conflict("note generation already in progress", nil)
	}
	defer s.inflight.Delete(key)

	text, err := s.generate(ctx, domain, prompt, instruction)
	if err != nil {
		kind := llm.KindOf(err)
		if kind == "" {
			kind = llm.KindService
		}
		log := logger.FromContext(ctx, s.logger)
		log.Error().Err(err).
			Str("session_id", sessionID.String()).
			Str("domain", string(domain)).
			Str("kind", string(kind)).
			Msg("note generation failed")
		return nil, apperrors.Generation(FailureMessage, map[string]string{"kind": string(kind)}, err)
	}

	generated := model.GeneratedNote{Text: text, GeneratedAt: time.Now().UTC()}
	if _, err := s.sessions.Update(ctx, sessionID, func(sess *model.Session) error {
		sess.SetNote(domain, generated)
		return nil
	}); err != nil {
		return nil, service.AppError(err)
	}
	return &generated, nil
}

// Note returns the last generated note for a domain.
func (s *Service) Note(ctx context.Context, sessionID uuid.UUID, domain model.Domain) (*model.GeneratedNote, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, service.AppError(err)
	}
	n := sess.Note(domain)
	if n.Empty() {
		return nil, apperrors.NotFound("note", nil)
	}
	return &n, nil
}

func (s *Service) prepare(sess *model.Session, domain model.Domain) (prompt, instruction string, err error) {
	switch domain {
	case model.DomainWound:
		if err := s.gate(sess.Wound.Submission()); err != nil {
			return "", "", err
		}
		return serializer.Wound(sess.Wound), WoundInstruction, nil
	case model.DomainDevice:
		if err := s.gate(model.DeviceSubmission{Devices: sess.Devices.Devices}); err != nil {
			return "", "", err
		}
		return serializer.Devices(sess.Devices), DeviceInstruction, nil
	}
	return "", "", apperrors.BadRequest("unknown note domain", nil)
}

func (s *Service) gate(submission any) error {
	err := s.validator.Validate(submission)
	if err == nil {
		return nil
	}
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return apperrors.Unprocessable("missing required fields", verr.Fields)
	}
	return apperrors.Internal(err)
}

func (s *Service) generate(ctx context.Context, domain model.Domain, prompt, instruction string) (string, error) {
	if s.metrics != nil {
		s.metrics.GenerationInFlight.Inc()
		defer s.metrics.GenerationInFlight.Dec()
		start := time.Now()
		defer func() {
			s.metrics.GenerationLatency.WithLabelValues(string(domain)).Observe(time.Since(start).Seconds())
		}()
	}

	text, err := s.generator.Generate(ctx, prompt, instruction)
	if s.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = string(llm.KindOf(err))
			if outcome == "" {
				outcome = "error"
			}
		}
		s.metrics.NotesGenerated.WithLabelValues(string(domain), outcome).Inc()
	}
	return text, err
}
