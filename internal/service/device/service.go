package device

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

type DeviceService interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*model.DeviceSheet, error)
	AddDevice(ctx context.Context, sessionID uuid.UUID) (*model.DeviceRecord, error)
	UpdateDevice(ctx context.Context, sessionID, deviceID uuid.UUID, field string, value any) (*model.DeviceRecord, error)
	RemoveDevice(ctx context.Context, sessionID, deviceID uuid.UUID) (*model.DeviceSheet, error)
	SetLumenCount(ctx context.Context, sessionID, deviceID uuid.UUID, n int) (*model.DeviceRecord, error)
	UpdateLumen(ctx context.Context, sessionID, deviceID uuid.UUID, index int, field string, value any) (*model.DeviceRecord, error)
	SetSchedule(ctx context.Context, sessionID uuid.UUID, nextDressingChange, notes string) (*model.DeviceSheet, error)
	Prompt(ctx context.Context, sessionID uuid.UUID) (string, error)
}

type Service struct {
	sessions *session.Service
	metrics  *metrics.Metrics
}

func NewService(sessions *session.Service, m *metrics.Metrics) *Service {
	return &Service{sessions: sessions, metrics: m}
}

func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (*model.DeviceSheet, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, service.AppError(err)
	}
	return &sess.Devices, nil
}

func (s *Service) AddDevice(ctx context.Context, sessionID uuid.UUID) (*model.DeviceRecord, error) {
	var added model.DeviceRecord
	_, err := s.update(ctx, sessionID, "add", func(devices []model.DeviceRecord) ([]model.DeviceRecord, error) {
		out, d := form.AddDevice(devices)
		added = d
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Service) UpdateDevice(ctx context.Context, sessionID, deviceID uuid.UUID, field string, value any) (*model.DeviceRecord, error) {
	sheet, err := s.update(ctx, sessionID, "update", func(devices []model.DeviceRecord) ([]model.DeviceRecord, error) {
		return form.UpdateDevice(devices, deviceID, field, value)
	})
	if err != nil {
		return nil, err
	}
	return find(sheet, deviceID), nil
}

// RemoveDevice deletes a device. Removing an unknown id is not an error.
func (s *Service) RemoveDevice(ctx context.Context, sessionID, deviceID uuid.UUID) (*model.DeviceSheet, error) {
	return s.update(ctx, sessionID, "remove", func(devices []model.DeviceRecord) ([]model.DeviceRecord, error) {
		return form.RemoveDevice(devices, deviceID), nil
	})
}

func (s *Service) SetLumenCount(ctx context.Context, sessionID, deviceID uuid.UUID, n int) (*model.DeviceRecord, error) {
	sheet, err := s.update(ctx, sessionID, "lumen_count", func(devices []model.DeviceRecord) ([]model.DeviceRecord, error) {
		return form.SetLumenCount(devices, deviceID, n)
	})
	if err != nil {
		return nil, err
	}
	return find(sheet, deviceID), nil
}

func (s *Service) UpdateLumen(ctx context.Context, sessionID, deviceID uuid.UUID, index int, field string, value any) (*model.DeviceRecord, error) {
	sheet, err := s.update(ctx, sessionID, "lumen", func(devices []model.DeviceRecord) ([]model.DeviceRecord, error) {
		return form.UpdateLumen(devices, deviceID, index, field, value)
	})
	if err != nil {
		return nil, err
	}
	return find(sheet, deviceID), nil
}

// SetSchedule replaces the next dressing change and the free-text notes of the sheet.
func (s *Service) SetSchedule(ctx context.Context, sessionID uuid.UUID, nextDressingChange, notes string) (*model.DeviceSheet, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *model.Session) error {
		sess.Devices.NextDressingChange = nextDressingChange
		sess.Devices.Notes = notes
		return nil
	})
	s.count("schedule", err)
	if err != nil {
		return nil, service.AppError(err)
	}
	return &sess.Devices, nil
}

// Prompt returns the serialized device sheet.
func (s *Service) Prompt(ctx context.Context, sessionID uuid.UUID) (string, error) {
	sheet, err := s.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return serializer.Devices(*sheet), nil
}

func (s *Service) update(ctx context.Context, sessionID uuid.UUID, op string, fn func([]model.DeviceRecord) ([]model.DeviceRecord, error)) (*model.DeviceSheet, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *model.Session) error {
		devices, err := fn(sess.Devices.Devices)
		if err != nil {
			return err
		}
		sess.Devices.Devices = devices
		return nil
	})
	s.count(op, err)
	if err != nil {
		return nil, service.AppError(err)
	}
	return &sess.Devices, nil
}

func (s *Service) count(op string, err error) {
	if s.metrics != nil {
		s.metrics.FormUpdates.WithLabelValues(string(model.DomainDevice), op, metrics.Status(err)).Inc()
	}
}

func find(sheet *model.DeviceSheet, id uuid.UUID) *model.DeviceRecord {
	for i := range sheet.Devices {
		if sheet.Devices[i].ID == id {
			return &sheet.Devices[i]
		}
	}
	return nil
}
