package model

import "strings"

// WoundType classifies the wound being assessed
type WoundType string

const (
	WoundTypeLPPI           WoundType = "LPP Grado I"
	WoundTypeLPPII          WoundType = "LPP Grado II"
	WoundTypeLPPIII         WoundType = "LPP Grado III"
	WoundTypeLPPIV          WoundType = "LPP Grado IV"
	WoundTypeVenousUlcer    WoundType = "Úlcera Venosa"
	WoundTypeArterialUlcer  WoundType = "Úlcera Arterial"
	WoundTypeDiabeticFoot   WoundType = "Pie Diabético"
	WoundTypeSurgical       WoundType = "Herida Quirúrgica"
	WoundTypeIncontinenceDA WoundType = "Dermatitis asociada a incontinencia"
	WoundTypeOther          WoundType = "Otro"
)

// Anatomical locations. Values containing BilateralToken need a laterality.
const (
	LocationSacrum     = "Región Sacra"
	LocationIschium    = "Isquion D/I"
	LocationTrochanter = "Trocánter D/I"
	LocationHeel       = "Talón D/I"
	LocationMalleolus  = "Maléolo D/I"
	LocationSole       = "Planta pie"
	LocationAbdomen    = "Abdomen"
	LocationGluteus    = "Glúteo D/I"
	LocationBack       = "Dorso"
	LocationOther      = "Otro"

	BilateralToken = "D/I"
)

const (
	LateralityRight = "Derecha"
	LateralityLeft  = "Izquierda"

	SutureTypeSilk    = "Seda"
	SutureTypeStaples = "Corchetes"
)

const (
	ExudateNone     = "Sin exudado"
	ExudateScarce   = "Escaso"
	ExudateModerate = "Moderado"
	ExudateAbundant = "Abundante"
)

const (
	CleansingCleanser     = "Limpiador de Heridas"
	CleansingSaline       = "Suero fisiológico"
	CleansingShower       = "Duchoterapia"
	CleansingSyringe      = "Limpieza con jeringa y aguja"
	CleansingSterileGauze = "Gasa/tórula estéril"
)

// IsBilateral reports whether a location names a paired anatomical site.
func IsBilateral(location string) bool {
	return strings.Contains(location, BilateralToken)
}

// WoundRecord is the single wound assessment owned by a session.
type WoundRecord struct {
	WoundType          WoundType `json:"wound_type"`
	WoundTypeOther     string    `json:"wound_type_other"`
	Dehiscence         bool      `json:"dehiscence"`
	Location           string    `json:"location"`
	LocationOther      string    `json:"location_other"`
	Laterality         string    `json:"laterality"`
	HasSutures         bool      `json:"has_sutures"`
	SutureType         string    `json:"suture_type"`
	PriorDressingState string    `json:"prior_dressing_state"`
	BedAppearance      []string  `json:"bed_appearance"`
	Size               string    `json:"size"`
	ExudateQuantity    string    `json:"exudate_quantity"`
	ExudateQuality     string    `json:"exudate_quality"`
	GranulationPct     string    `json:"granulation_pct"`
	SloughPct          string    `json:"slough_pct"`
	NecroticPct        string    `json:"necrotic_pct"`
	Edema              string    `json:"edema"`
	PainScore          string    `json:"pain_score"`
	SurroundingSkin    []string  `json:"surrounding_skin"`
	CleansingSolution  string    `json:"cleansing_solution"`
	CleansingMethod    string    `json:"cleansing_method"`
	PrimaryDressing    []string  `json:"primary_dressing"`
	SecondaryDressing  []string  `json:"secondary_dressing"`
	Notes              string    `json:"notes"`
	NextDressingChange string    `json:"next_dressing_change"`
}

// NewWoundRecord returns the empty form.
func NewWoundRecord() WoundRecord {
	return WoundRecord{
		BedAppearance:     []string{},
		SurroundingSkin:   []string{},
		PrimaryDressing:   []string{},
		SecondaryDressing: []string{},
	}
}

// Clone returns a deep copy so reducers never share slices with their input.
func (w WoundRecord) Clone() WoundRecord {
	out := w
	out.BedAppearance = append([]string{}, w.BedAppearance...)
	out.SurroundingSkin = append([]string{}, w.SurroundingSkin...)
	out.PrimaryDressing = append([]string{}, w.PrimaryDressing...)
	out.SecondaryDressing = append([]string{}, w.SecondaryDressing...)
	return out
}

// WoundSubmission is the subset of the wound form required before a note can be generated.
type WoundSubmission struct {
	WoundType      string `json:"wound_type" validate:"required"`
	WoundTypeOther string `json:"wound_type_other" validate:"required_if=WoundType Otro"`
	Location       string `json:"location" validate:"required"`
	LocationOther  string `json:"location_other" validate:"required_if=Location Otro"`
}

// Submission extracts the gated fields.
func (w WoundRecord) Submission() WoundSubmission {
	return WoundSubmission{
		WoundType:      string(w.WoundType),
		WoundTypeOther: strings.TrimSpace(w.WoundTypeOther),
		Location:       w.Location,
		LocationOther:  strings.TrimSpace(w.LocationOther),
	}
}
