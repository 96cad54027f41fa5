package form

import (
	"fmt"
	"slices"

	"github.com/jwalitptl/woundcare-api/internal/model"
)

// woundField binds a JSON field name to the record member it edits. Exactly one
// of text, flag or set is non-nil. Options, when present, close the value set.
type woundField struct {
	text    func(*model.WoundRecord) *string
	flag    func(*model.WoundRecord) *bool
	set     func(*model.WoundRecord) *[]string
	options []string
}

func (f woundField) selectable() bool {
	return f.flag != nil || (f.text != nil && f.options != nil)
}

var woundFields = map[string]woundField{
	"wound_type": {
		text:    func(w *model.WoundRecord) *string { return (*string)(&w.WoundType) },
		options: woundTypeOptions(),
	},
	"wound_type_other": {text: func(w *model.WoundRecord) *string { return &w.WoundTypeOther }},
	"dehiscence":       {flag: func(w *model.WoundRecord) *bool { return &w.Dehiscence }},
	"location": {
		text:    func(w *model.WoundRecord) *string { return &w.Location },
		options: model.Locations,
	},
	"location_other": {text: func(w *model.WoundRecord) *string { return &w.LocationOther }},
	"laterality": {
		text:    func(w *model.WoundRecord) *string { return &w.Laterality },
		options: model.Lateralities,
	},
	"has_sutures": {flag: func(w *model.WoundRecord) *bool { return &w.HasSutures }},
	"suture_type": {
		text:    func(w *model.WoundRecord) *string { return &w.SutureType },
		options: model.SutureTypes,
	},
	"prior_dressing_state": {text: func(w *model.WoundRecord) *string { return &w.PriorDressingState }},
	"bed_appearance": {
		set:     func(w *model.WoundRecord) *[]string { return &w.BedAppearance },
		options: model.BedAppearances,
	},
	"size": {text: func(w *model.WoundRecord) *string { return &w.Size }},
	"exudate_quantity": {
		text:    func(w *model.WoundRecord) *string { return &w.ExudateQuantity },
		options: model.ExudateQuantities,
	},
	"exudate_quality": {
		text:    func(w *model.WoundRecord) *string { return &w.ExudateQuality },
		options: model.ExudateQualities,
	},
	"granulation_pct": {text: func(w *model.WoundRecord) *string { return &w.GranulationPct }},
	"slough_pct":      {text: func(w *model.WoundRecord) *string { return &w.SloughPct }},
	"necrotic_pct":    {text: func(w *model.WoundRecord) *string { return &w.NecroticPct }},
	"edema":           {text: func(w *model.WoundRecord) *string { return &w.Edema }},
	"pain_score":      {text: func(w *model.WoundRecord) *string { return &w.PainScore }},
	"surrounding_skin": {
		set:     func(w *model.WoundRecord) *[]string { return &w.SurroundingSkin },
		options: model.SurroundingSkin,
	},
	"cleansing_solution": {
		text:    func(w *model.WoundRecord) *string { return &w.CleansingSolution },
		options: model.CleansingSolutions,
	},
	"cleansing_method": {
		text:    func(w *model.WoundRecord) *string { return &w.CleansingMethod },
		options: model.CleansingMethods,
	},
	"primary_dressing": {
		set:     func(w *model.WoundRecord) *[]string { return &w.PrimaryDressing },
		options: model.PrimaryDressings,
	},
	"secondary_dressing": {
		set:     func(w *model.WoundRecord) *[]string { return &w.SecondaryDressing },
		options: model.SecondaryDressings,
	},
	"notes":                {text: func(w *model.WoundRecord) *string { return &w.Notes }},
	"next_dressing_change": {text: func(w *model.WoundRecord) *string { return &w.NextDressingChange }},
}

func woundTypeOptions() []string {
	out := make([]string, len(model.WoundTypes))
	for i, t := range model.WoundTypes {
		out[i] = string(t)
	}
	return out
}

func lookupWoundField(name string) (woundField, error) {
	f, ok := woundFields[name]
	if !ok {
		return woundField{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// SetField replaces any single wound field and returns the normalised record.
// The input record is never modified.
func SetField(w model.WoundRecord, field string, value any) (model.WoundRecord, error) {
	f, err := lookupWoundField(field)
	if err != nil {
		return w, err
	}
	out := w.Clone()
	if err := assign(&out, field, f, value); err != nil {
		return w, err
	}
	return NormalizeWound(out), nil
}

// SelectOne sets a single-choice or yes/no field.
func SelectOne(w model.WoundRecord, field string, value any) (model.WoundRecord, error) {
	f, err := lookupWoundField(field)
	if err != nil {
		return w, err
	}
	if !f.selectable() {
		return w, fmt.Errorf("%w: %s is not a single-choice field", ErrInvalidValue, field)
	}
	out := w.Clone()
	if err := assign(&out, field, f, value); err != nil {
		return w, err
	}
	return NormalizeWound(out), nil
}

// ToggleTag flips one option of a multi-select field.
func ToggleTag(w model.WoundRecord, field, option string) (model.WoundRecord, error) {
	f, err := lookupWoundField(field)
	if err != nil {
		return w, err
	}
	if f.set == nil {
		return w, fmt.Errorf("%w: %s is not a multi-select field", ErrInvalidValue, field)
	}
	if option == "" {
		return w, fmt.Errorf("%w: empty option for %s", ErrInvalidValue, field)
	}
	if err := checkOption(field, option, f.options); err != nil {
		return w, err
	}
	out := w.Clone()
	p := f.set(&out)
	*p = toggle(*p, option)
	return NormalizeWound(out), nil
}

// Reset returns the empty wound form.
func Reset() model.WoundRecord {
	return model.NewWoundRecord()
}

func assign(w *model.WoundRecord, field string, f woundField, value any) error {
	switch {
	case f.flag != nil:
		b, err := asBool(field, value)
		if err != nil {
			return err
		}
		*f.flag(w) = b
	case f.set != nil:
		items, err := asStrings(field, value)
		if err != nil {
			return err
		}
		for _, item := range items {
			if item == "" {
				return fmt.Errorf("%w: empty option for %s", ErrInvalidValue, field)
			}
			if err := checkOption(field, item, f.options); err != nil {
				return err
			}
		}
		*f.set(w) = dedupe(items)
	default:
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		if err := checkOption(field, s, f.options); err != nil {
			return err
		}
		*f.text(w) = s
	}
	return nil
}

// NormalizeWound clears every field whose governing field no longer allows it.
func NormalizeWound(w model.WoundRecord) model.WoundRecord {
	if !model.IsBilateral(w.Location) || !slices.Contains(model.Lateralities, w.Laterality) {
		w.Laterality = ""
	}
	if !w.HasSutures {
		w.SutureType = ""
	}
	if w.WoundType != model.WoundTypeSurgical {
		w.Dehiscence = false
	}
	if w.ExudateQuantity == model.ExudateNone {
		w.ExudateQuality = ""
	}
	return w
}
