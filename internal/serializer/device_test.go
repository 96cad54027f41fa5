package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/woundcare-api/internal/model"
)

func TestDevicesLumenLine(t *testing.T) {
	sheet := model.NewDeviceSheet()
	sheet.Devices = []model.DeviceRecord{{
		Type:           model.DeviceCVC,
		InfectionSigns: []string{model.InfectionNoSigns},
		LumenCount:     3,
		Lumens: []model.LumenRecord{
			{Name: "Proximal", Patency: model.PatencyInfuseReflux},
			{Name: "Medial", Patency: model.PatencyInfuseReflux},
			{Name: "Distal", Patency: model.PatencySealed},
		},
	}}

	got := Devices(sheet)
	assert.Contains(t, got, "PERMEABILIDAD LÚMENES: Proximal: Infunden y Refluyen; Medial: Infunden y Refluyen; Distal: Sellados")
}

func TestDevicesFullSheet(t *testing.T) {
	sheet := model.DeviceSheet{
		Devices: []model.DeviceRecord{
			{
				Type:           model.DeviceTracheostomy,
				InfectionSigns: []string{model.InfectionErythema},
				Stoma:          "Indemne",
				Granuloma:      true,
				GranulomaClock: 3,
			},
			{
				Type:           model.DevicePeripheral,
				Location:       "Antebrazo izquierdo",
				InfectionSigns: []string{model.InfectionNoSigns},
				Dressing:       model.DressingOther,
				DressingOther:  "Tegaderm",
				Patent:         true,
			},
		},
		NextDressingChange: "Turno noche",
	}

	want := "DISPOSITIVOS A EVALUAR:\n" +
		"- TIPO: TQT\n" +
		"  UBICACIÓN: Pericanular\n" +
		"  SIGNOS INFECCIÓN: Eritema\n" +
		"  ESTOMA: Indemne\n" +
		"  GRANULOMA: SÍ (hora 3)\n" +
		"- TIPO: VVP\n" +
		"  UBICACIÓN: Antebrazo izquierdo\n" +
		"  SIGNOS INFECCIÓN: Sin signos de infección\n" +
		"  APÓSITO: Tegaderm\n" +
		"  PERMEABILIDAD: SÍ\n" +
		"PRÓXIMA CURACIÓN: Turno noche"
	assert.Equal(t, want, Devices(sheet))
}

func TestDevicesDefaults(t *testing.T) {
	sheet := model.NewDeviceSheet()
	sheet.Devices = []model.DeviceRecord{{Type: model.DeviceOther}}

	got := Devices(sheet)
	assert.Contains(t, got, "- TIPO: Dispositivo Genérico")
	assert.Contains(t, got, "PRÓXIMA CURACIÓN: "+DefaultNextDressingChange)
	assert.NotContains(t, got, "PERMEABILIDAD")
}

func TestLumenSummaryNamesBlankLumens(t *testing.T) {
	got := LumenSummary([]model.LumenRecord{
		{Patency: model.PatencySealed},
		{Patency: model.PatencyInfuseOnly},
	})
	assert.Equal(t, "Lumen 1: Sellados; Lumen 2: Solo infunden", got)
}
