package model

// Catalog lists every enumerated option the UI pickers offer.
type Catalog struct {
	WoundTypes         []WoundType  `json:"wound_types"`
	Locations          []string     `json:"locations"`
	Lateralities       []string     `json:"lateralities"`
	SutureTypes        []string     `json:"suture_types"`
	BedAppearances     []string     `json:"bed_appearances"`
	ExudateQuantities  []string     `json:"exudate_quantities"`
	ExudateQualities   []string     `json:"exudate_qualities"`
	SurroundingSkin    []string     `json:"surrounding_skin"`
	CleansingSolutions []string     `json:"cleansing_solutions"`
	CleansingMethods   []string     `json:"cleansing_methods"`
	PrimaryDressings   []string     `json:"primary_dressings"`
	SecondaryDressings []string     `json:"secondary_dressings"`
	DeviceTypes        []DeviceType `json:"device_types"`
	InfectionSigns     []string     `json:"infection_signs"`
	LumenPatency       []string     `json:"lumen_patency"`
	ArterialSubtypes   []string     `json:"arterial_subtypes"`
	DeviceDressings    []string     `json:"device_dressings"`
}

var (
	WoundTypes = []WoundType{
		WoundTypeLPPI, WoundTypeLPPII, WoundTypeLPPIII, WoundTypeLPPIV,
		WoundTypeVenousUlcer, WoundTypeArterialUlcer, WoundTypeDiabeticFoot,
		WoundTypeSurgical, WoundTypeIncontinenceDA, WoundTypeOther,
	}
	Locations = []string{
		LocationSacrum, LocationIschium, LocationTrochanter, LocationHeel, LocationMalleolus,
		LocationSole, LocationAbdomen, LocationGluteus, LocationBack, LocationOther,
	}
	Lateralities       = []string{LateralityRight, LateralityLeft}
	SutureTypes        = []string{SutureTypeSilk, SutureTypeStaples}
	BedAppearances     = []string{"Granulatorio", "Esfacelado", "Necrótico", "Epitelización", "Infectado"}
	ExudateQuantities  = []string{ExudateNone, ExudateScarce, ExudateModerate, ExudateAbundant}
	ExudateQualities   = []string{"Seroso", "Hemático", "Serosanguinolento", "Turbio", "Purulento"}
	SurroundingSkin    = []string{"Sana", "Eritematosa", "Macerada", "Descamada", "Pigmentada", "Eczematosa"}
	CleansingSolutions = []string{CleansingCleanser, CleansingSaline}
	CleansingMethods   = []string{CleansingShower, CleansingSyringe, CleansingSterileGauze}
	PrimaryDressings   = []string{"Hidrogel", "Gasa Parafinada", "Carbón plata", "Alginato de Calcio", "Pasivo"}
	SecondaryDressings = []string{"Apósito Pasivo", "Vendaje", "Fixomull"}

	DeviceTypes = []DeviceType{
		DeviceCVC, DeviceMidLine, DevicePiccLine, DeviceArterialLine,
		DeviceTracheostomy, DevicePeripheral, DeviceOther,
	}
	InfectionSigns = []string{
		InfectionNoSigns, InfectionErythema, InfectionHeat,
		InfectionInduration, InfectionPain, InfectionPurulent,
	}
	LumenPatency     = []string{PatencyInfuseReflux, PatencyInfuseOnly, PatencySealed, PatencyNone}
	ArterialSubtypes = []string{ArterialConventional, ArterialPiCCO}
	DeviceDressings  = []string{DressingTransparent, DressingTransparentCHG, DressingGauze, DressingFoam, DressingOther}
)

// DefaultCatalog returns the option lists.
func DefaultCatalog() Catalog {
	return Catalog{
		WoundTypes:         WoundTypes,
		Locations:          Locations,
		Lateralities:       Lateralities,
		SutureTypes:        SutureTypes,
		BedAppearances:     BedAppearances,
		ExudateQuantities:  ExudateQuantities,
		ExudateQualities:   ExudateQualities,
		SurroundingSkin:    SurroundingSkin,
		CleansingSolutions: CleansingSolutions,
		CleansingMethods:   CleansingMethods,
		PrimaryDressings:   PrimaryDressings,
		SecondaryDressings: SecondaryDressings,
		DeviceTypes:        DeviceTypes,
		InfectionSigns:     InfectionSigns,
		LumenPatency:       LumenPatency,
		ArterialSubtypes:   ArterialSubtypes,
		DeviceDressings:    DeviceDressings,
	}
}
