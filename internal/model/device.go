package model

import (
	"github.com/google/uuid"
)

// DeviceType is the closed set of invasive devices the form understands.
type DeviceType string

const (
	DeviceCVC          DeviceType = "CVC"
	DeviceMidLine      DeviceType = "MidLine"
	DevicePiccLine     DeviceType = "PiccLine"
	DeviceArterialLine DeviceType = "Línea Arterial"
	DeviceTracheostomy DeviceType = "TQT"
	DevicePeripheral   DeviceType = "VVP"
	DeviceOther        DeviceType = "Otro"

	DefaultDeviceType = DeviceCVC
)

const (
	MinLumens = 1
	MaxLumens = 5
)

// IsCentralLine reports whether the type carries a user-selectable lumen count.
func (t DeviceType) IsCentralLine() bool {
	return t == DeviceCVC || t == DeviceMidLine || t == DevicePiccLine
}

// IsVascular reports whether the type carries lumens at all.
func (t DeviceType) IsVascular() bool {
	return t.IsCentralLine() || t == DeviceArterialLine
}

// Valid reports whether t is one of the known device types.
func (t DeviceType) Valid() bool {
	switch t {
	case DeviceCVC, DeviceMidLine, DevicePiccLine, DeviceArterialLine,
		DeviceTracheostomy, DevicePeripheral, DeviceOther:
		return true
	}
	return false
}

const (
	InfectionNoSigns    = "Sin signos de infección"
	InfectionErythema   = "Eritema"
	InfectionHeat       = "Calor local"
	InfectionInduration = "Induración"
	InfectionPain       = "Dolor"
	InfectionPurulent   = "Secreción purulenta"
)

const (
	PatencyInfuseReflux = "Infunden y Refluyen"
	PatencyInfuseOnly   = "Solo infunden"
	PatencySealed       = "Sellados"
	PatencyNone         = "No permeable"
)

const (
	ArterialConventional = "Convencional"
	ArterialPiCCO        = "PiCCO"
)

const (
	DressingTransparent    = "Apósito transparente"
	DressingTransparentCHG = "Apósito transparente con CHG"
	DressingGauze          = "Gasa estéril"
	DressingFoam           = "Espuma"
	DressingOther          = "Otro"
)

// LumenRecord is the patency state of one catheter lumen.
type LumenRecord struct {
	Name    string `json:"name"`
	Patency string `json:"patency"`
}

// DeviceRecord is one entry of the device list. Type-specific fields are only
// meaningful for their type; the form layer resets them on a type change.
type DeviceRecord struct {
	ID             uuid.UUID  `json:"id"`
	Type           DeviceType `json:"type"`
	TypeOther      string     `json:"type_other,omitempty"`
	Location       string     `json:"location"`
	InfectionSigns []string   `json:"infection_signs"`
	Content        string     `json:"content"`
	Fixation       string     `json:"fixation"`
	Dressing       string     `json:"dressing"`
	DressingOther  string     `json:"dressing_other,omitempty"`

	// CVC, MidLine, PiccLine, Línea Arterial
	LumenCount      int           `json:"lumen_count,omitempty"`
	Lumens          []LumenRecord `json:"lumens,omitempty"`
	ArterialSubtype string        `json:"arterial_subtype,omitempty"`

	// TQT
	Stoma          string `json:"stoma,omitempty"`
	Granuloma      bool   `json:"granuloma,omitempty"`
	GranulomaClock int    `json:"granuloma_clock,omitempty"`

	// VVP
	Phlebitis string `json:"phlebitis,omitempty"`
	Patent    bool   `json:"patent,omitempty"`
}

// Clone returns a deep copy.
func (d DeviceRecord) Clone() DeviceRecord {
	out := d
	out.InfectionSigns = append([]string{}, d.InfectionSigns...)
	if d.Lumens != nil {
		out.Lumens = append([]LumenRecord{}, d.Lumens...)
	}
	return out
}

// DeviceSheet is the device tab: the device list plus the shared schedule and notes.
type DeviceSheet struct {
	Devices            []DeviceRecord `json:"devices"`
	NextDressingChange string         `json:"next_dressing_change"`
	Notes              string         `json:"notes"`
}

// NewDeviceSheet returns an empty sheet.
func NewDeviceSheet() DeviceSheet {
	return DeviceSheet{Devices: []DeviceRecord{}}
}

// Clone returns a deep copy.
func (s DeviceSheet) Clone() DeviceSheet {
	out := s
	out.Devices = make([]DeviceRecord, len(s.Devices))
	for i, d := range s.Devices {
		out.Devices[i] = d.Clone()
	}
	return out
}

// DeviceSubmission gates device note generation.
type DeviceSubmission struct {
	Devices []DeviceRecord `json:"devices" validate:"min=1"`
}
