package model

import (
	"time"

	"github.com/google/uuid"
)

// Domain names one of the two independent assessment tabs.
type Domain string

const (
	DomainWound  Domain = "wound"
	DomainDevice Domain = "device"
)

// GeneratedNote is the latest note produced for a domain. It is replaced on every
// successful generation and left untouched when generation fails.
type GeneratedNote struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Empty reports whether no note has been generated yet.
func (n GeneratedNote) Empty() bool {
	return n.Text == ""
}

// Session is the whole in-memory state of one browser session.
type Session struct {
	ID         uuid.UUID     `json:"id"`
	Wound      WoundRecord   `json:"wound"`
	WoundNote  GeneratedNote `json:"wound_note"`
	Devices    DeviceSheet   `json:"devices"`
	DeviceNote GeneratedNote `json:"device_note"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewSession returns a session with empty forms.
func NewSession(id uuid.UUID) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Wound:     NewWoundRecord(),
		Devices:   NewDeviceSheet(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	out := *s
	out.Wound = s.Wound.Clone()
	out.Devices = s.Devices.Clone()
	return &out
}

// Note returns the stored note for a domain.
func (s *Session) Note(d Domain) GeneratedNote {
	if d == DomainDevice {
		return s.DeviceNote
	}
	return s.WoundNote
}

// SetNote replaces the stored note for a domain.
func (s *Session) SetNote(d Domain, n GeneratedNote) {
	if d == DomainDevice {
		s.DeviceNote = n
		return
	}
	s.WoundNote = n
}
