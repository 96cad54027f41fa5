package serializer

import (
	"fmt"
	"strings"

	"github.com/jwalitptl/woundcare-api/internal/model"
)

const (
	DefaultNextDressingChange = "Según protocolo institucional (7 días o SOS)"
	DefaultTracheostomySite   = "Pericanular"
	genericDeviceName         = "Dispositivo Genérico"
)

// DeviceName returns the display name of a device, applying the "Otro" override.
func DeviceName(d model.DeviceRecord) string {
	if d.Type != model.DeviceOther {
		return string(d.Type)
	}
	if name := strings.TrimSpace(d.TypeOther); name != "" {
		return name
	}
	return genericDeviceName
}

// LumenSummary renders the lumen permeability line as "name: state" pairs
// joined by "; ", in lumen order.
func LumenSummary(lumens []model.LumenRecord) string {
	pairs := make([]string, 0, len(lumens))
	for i, l := range lumens {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			name = fmt.Sprintf("Lumen %d", i+1)
		}
		if strings.TrimSpace(l.Patency) == "" {
			continue
		}
		pairs = append(pairs, name+": "+l.Patency)
	}
	return strings.Join(pairs, "; ")
}

// Devices serializes the device sheet into the generation prompt.
func Devices(sheet model.DeviceSheet) string {
	var l lines
	l.raw("DISPOSITIVOS A EVALUAR:")
	for _, d := range sheet.Devices {
		device(&l, d)
	}
	l.indent = ""
	l.add("OBSERVACIONES", sheet.Notes)
	next := strings.TrimSpace(sheet.NextDressingChange)
	if next == "" {
		next = DefaultNextDressingChange
	}
	l.add("PRÓXIMA CURACIÓN", next)
	return l.String()
}

func device(l *lines, d model.DeviceRecord) {
	l.indent = ""
	l.add("- TIPO", DeviceName(d))
	l.indent = "  "

	location := d.Location
	if strings.TrimSpace(location) == "" && d.Type == model.DeviceTracheostomy {
		location = DefaultTracheostomySite
	}
	l.add("UBICACIÓN", location)
	l.add("SIGNOS INFECCIÓN", join(d.InfectionSigns, ", "))
	l.add("CONTENIDO/DÉBITO", d.Content)
	l.add("FIJACIÓN", d.Fixation)
	l.add("APÓSITO", dressing(d))

	switch d.Type {
	case model.DeviceCVC, model.DeviceMidLine, model.DevicePiccLine:
		l.add("PERMEABILIDAD LÚMENES", LumenSummary(d.Lumens))
	case model.DeviceArterialLine:
		l.add("SUBTIPO", d.ArterialSubtype)
		l.add("PERMEABILIDAD LÚMENES", LumenSummary(d.Lumens))
	case model.DeviceTracheostomy:
		l.add("ESTOMA", d.Stoma)
		l.add("GRANULOMA", granuloma(d))
	case model.DevicePeripheral:
		l.add("FLEBITIS", d.Phlebitis)
		l.add("PERMEABILIDAD", yesNo(d.Patent))
	}
}

func dressing(d model.DeviceRecord) string {
	if d.Dressing == model.DressingOther {
		return d.DressingOther
	}
	return d.Dressing
}

func granuloma(d model.DeviceRecord) string {
	if !d.Granuloma {
		return yesNo(false)
	}
	if d.GranulomaClock > 0 {
		return fmt.Sprintf("%s (hora %d)", yesNo(true), d.GranulomaClock)
	}
	return yesNo(true)
}
