package form

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/jwalitptl/woundcare-api/internal/model"
)

// NewDevice returns a device with the add-device defaults.
func NewDevice() model.DeviceRecord {
	return Retype(model.DeviceRecord{
		ID:             uuid.New(),
		InfectionSigns: []string{model.InfectionNoSigns},
	}, model.DefaultDeviceType)
}

// Retype rebuilds d as a fresh variant of t. Common fields survive and every
// type-specific field takes the new type's defaults.
func Retype(d model.DeviceRecord, t model.DeviceType) model.DeviceRecord {
	out := model.DeviceRecord{
		ID:             d.ID,
		Type:           t,
		TypeOther:      d.TypeOther,
		Location:       d.Location,
		InfectionSigns: append([]string{}, d.InfectionSigns...),
		Content:        d.Content,
		Fixation:       d.Fixation,
		Dressing:       d.Dressing,
		DressingOther:  d.DressingOther,
	}
	if n := DefaultLumenCount(t); n > 0 {
		out.LumenCount = n
		out.Lumens = buildLumens(t, n)
	}
	switch t {
	case model.DeviceArterialLine:
		out.ArterialSubtype = model.ArterialConventional
	case model.DevicePeripheral:
		out.Patent = true
	}
	if len(out.InfectionSigns) == 0 {
		out.InfectionSigns = []string{model.InfectionNoSigns}
	}
	return out
}

// AddDevice appends a new default device and returns the list and the new record.
func AddDevice(devices []model.DeviceRecord) ([]model.DeviceRecord, model.DeviceRecord) {
	d := NewDevice()
	return append(cloneDevices(devices), d), d
}

// RemoveDevice drops the device with the given id. An absent id leaves the list unchanged.
func RemoveDevice(devices []model.DeviceRecord, id uuid.UUID) []model.DeviceRecord {
	return slices.DeleteFunc(cloneDevices(devices), func(d model.DeviceRecord) bool {
		return d.ID == id
	})
}

// UpdateDevice applies a single field edit to the device with the given id.
func UpdateDevice(devices []model.DeviceRecord, id uuid.UUID, field string, value any) ([]model.DeviceRecord, error) {
	return withDevice(devices, id, func(d *model.DeviceRecord) error {
		return updateDeviceField(d, field, value)
	})
}

// SetLumenCount regenerates the lumen list of a central line with n lumens,
// discarding any prior lumen state. Types without a lumen count are left untouched.
func SetLumenCount(devices []model.DeviceRecord, id uuid.UUID, n int) ([]model.DeviceRecord, error) {
	return withDevice(devices, id, func(d *model.DeviceRecord) error {
		setLumenCount(d, n)
		return nil
	})
}

// UpdateLumen edits the name or patency of one lumen in place.
func UpdateLumen(devices []model.DeviceRecord, id uuid.UUID, index int, field string, value any) ([]model.DeviceRecord, error) {
	return withDevice(devices, id, func(d *model.DeviceRecord) error {
		if index < 0 || index >= len(d.Lumens) {
			return fmt.Errorf("%w: index %d", ErrLumenNotFound, index)
		}
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "name":
			d.Lumens[index].Name = s
		case "patency":
			if err := checkOption(field, s, model.LumenPatency); err != nil {
				return err
			}
			d.Lumens[index].Patency = s
		default:
			return fmt.Errorf("%w: lumen %s", ErrUnknownField, field)
		}
		return nil
	})
}

func withDevice(devices []model.DeviceRecord, id uuid.UUID, fn func(*model.DeviceRecord) error) ([]model.DeviceRecord, error) {
	i := slices.IndexFunc(devices, func(d model.DeviceRecord) bool { return d.ID == id })
	if i < 0 {
		return devices, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}
	out := cloneDevices(devices)
	if err := fn(&out[i]); err != nil {
		return devices, err
	}
	return out, nil
}

func cloneDevices(devices []model.DeviceRecord) []model.DeviceRecord {
	out := make([]model.DeviceRecord, len(devices))
	for i, d := range devices {
		out[i] = d.Clone()
	}
	return out
}

func setLumenCount(d *model.DeviceRecord, n int) {
	if !d.Type.IsCentralLine() {
		return
	}
	n = clampLumens(n)
	d.LumenCount = n
	d.Lumens = buildLumens(d.Type, n)
}

func updateDeviceField(d *model.DeviceRecord, field string, value any) error {
	switch field {
	case "type":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		t := model.DeviceType(s)
		if !t.Valid() {
			return fmt.Errorf("%w: %q is not a device type", ErrInvalidValue, s)
		}
		if t != d.Type {
			*d = Retype(*d, t)
		}
	case "infection_signs":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		if s == "" {
			return fmt.Errorf("%w: empty option for %s", ErrInvalidValue, field)
		}
		if err := checkOption(field, s, model.InfectionSigns); err != nil {
			return err
		}
		d.InfectionSigns = ToggleInfectionSign(d.InfectionSigns, s)
	case "type_other", "location", "content", "fixation", "dressing_other":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		*deviceText(d, field) = s
	case "dressing":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		if err := checkOption(field, s, model.DeviceDressings); err != nil {
			return err
		}
		d.Dressing = s
	case "lumen_count":
		n, err := asInt(field, value)
		if err != nil {
			return err
		}
		setLumenCount(d, n)
	case "arterial_subtype":
		if d.Type != model.DeviceArterialLine {
			return notApplicable(d, field)
		}
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		if s == "" {
			s = model.ArterialConventional
		}
		if err := checkOption(field, s, model.ArterialSubtypes); err != nil {
			return err
		}
		d.ArterialSubtype = s
	case "stoma":
		if d.Type != model.DeviceTracheostomy {
			return notApplicable(d, field)
		}
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		d.Stoma = s
	case "granuloma":
		if d.Type != model.DeviceTracheostomy {
			return notApplicable(d, field)
		}
		b, err := asBool(field, value)
		if err != nil {
			return err
		}
		d.Granuloma = b
		if !b {
			d.GranulomaClock = 0
		}
	case "granuloma_clock":
		if d.Type != model.DeviceTracheostomy || !d.Granuloma {
			return notApplicable(d, field)
		}
		n, err := asInt(field, value)
		if err != nil {
			return err
		}
		if n < 0 || n > 12 {
			return fmt.Errorf("%w: granuloma_clock must be between 1 and 12, or 0 to clear", ErrInvalidValue)
		}
		d.GranulomaClock = n
	case "phlebitis":
		if d.Type != model.DevicePeripheral {
			return notApplicable(d, field)
		}
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		d.Phlebitis = s
	case "patent":
		if d.Type != model.DevicePeripheral {
			return notApplicable(d, field)
		}
		b, err := asBool(field, value)
		if err != nil {
			return err
		}
		d.Patent = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func deviceText(d *model.DeviceRecord, field string) *string {
	switch field {
	case "type_other":
		return &d.TypeOther
	case "location":
		return &d.Location
	case "content":
		return &d.Content
	case "fixation":
		return &d.Fixation
	}
	return &d.DressingOther
}

func notApplicable(d *model.DeviceRecord, field string) error {
	return fmt.Errorf("%w: %s does not apply to %s", ErrInvalidValue, field, d.Type)
}

// ToggleInfectionSign flips one sign. "No signs" excludes every other sign and
// is restored whenever the set would become empty.
func ToggleInfectionSign(signs []string, sign string) []string {
	if sign == model.InfectionNoSigns {
		return []string{model.InfectionNoSigns}
	}
	out := slices.DeleteFunc(toggle(signs, sign), func(s string) bool {
		return s == model.InfectionNoSigns
	})
	if len(out) == 0 {
		return []string{model.InfectionNoSigns}
	}
	return out
}
