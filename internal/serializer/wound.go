// Package serializer flattens the assessment forms into the text prompts sent
// to the note generator. Every function here is pure and deterministic.
package serializer

import (
	"strings"

	"github.com/jwalitptl/woundcare-api/internal/model"
)

// ResolvedWoundType returns the wound type with the "Otro" override applied.
func ResolvedWoundType(w model.WoundRecord) string {
	if w.WoundType == model.WoundTypeOther {
		return strings.TrimSpace(w.WoundTypeOther)
	}
	return string(w.WoundType)
}

// ResolvedLocation returns the location with the "Otro" override applied and
// the bilateral token replaced by the laterality when one is set.
func ResolvedLocation(w model.WoundRecord) string {
	if w.Location == model.LocationOther {
		return strings.TrimSpace(w.LocationOther)
	}
	if model.IsBilateral(w.Location) && w.Laterality != "" {
		return strings.Replace(w.Location, model.BilateralToken, w.Laterality, 1)
	}
	return w.Location
}

// Wound serializes a wound record into the generation prompt.
func Wound(w model.WoundRecord) string {
	var l lines
	l.add("Tipo", ResolvedWoundType(w))
	if w.WoundType == model.WoundTypeSurgical {
		l.add("Dehiscencia", yesNo(w.Dehiscence))
	}
	l.add("Ubicación", ResolvedLocation(w))
	l.add("Puntos", sutures(w))
	l.add("Apósito anterior", w.PriorDressingState)
	l.add("Aspecto", join(w.BedAppearance, ", "))
	l.add("Tamaño", w.Size)
	l.add("Cantidad Exudado", w.ExudateQuantity)
	if w.ExudateQuantity != model.ExudateNone {
		l.add("Calidad Exudado", w.ExudateQuality)
	}
	l.add("% Granulatorio", w.GranulationPct)
	l.add("% Esfacelo", w.SloughPct)
	l.add("% Necrótico", w.NecroticPct)
	l.add("Edema", w.Edema)
	l.add("EVA", w.PainScore)
	l.add("Piel circundante", join(w.SurroundingSkin, ", "))
	l.add("Limpieza", join([]string{w.CleansingSolution, w.CleansingMethod}, " mediante "))
	l.add("Apósito primario", join(w.PrimaryDressing, ", "))
	l.add("Apósito secundario", join(w.SecondaryDressing, ", "))
	l.add("Observaciones", w.Notes)
	l.add("Próxima curación", w.NextDressingChange)
	return l.String()
}

func sutures(w model.WoundRecord) string {
	if !w.HasSutures {
		return yesNo(false)
	}
	if w.SutureType == "" {
		return yesNo(true)
	}
	return yesNo(true) + " (" + w.SutureType + ")"
}
