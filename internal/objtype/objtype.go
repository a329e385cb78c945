package objtype

// ID is the legacy object-type identifier from cl_IP_ObjTypes. The values
// are fixed by the relational schema and must not be renumbered.
type ID int

const (
	Invention          ID = 1
	UtilityModel       ID = 2
	Topography         ID = 3
	TradeMark          ID = 4
	GeographicalOrigin ID = 5
	IndustrialDesign   ID = 6
	MadridMark         ID = 9
	Copyright          ID = 10
	Decision           ID = 11
	SupplementaryCert  ID = 13
	MadridMarkUA       ID = 14
)

// PatentFamily reports whether id is an invention, utility model or
// semiconductor topography. These three share the Patent/Claim biblio
// layout and most of the pipeline behaviour.
func (id ID) PatentFamily() bool {
	return id == Invention || id == UtilityModel || id == Topography
}

// CopyrightFamily reports whether id is a copyright certificate or a
// decision/agreement record (Certificate/Decision biblio layout).
func (id ID) CopyrightFamily() bool {
	return id == Copyright || id == Decision
}

// MadridFamily reports whether id is one of the Madrid international mark
// variants.
func (id ID) MadridFamily() bool {
	return id == MadridMark || id == MadridMarkUA
}

func (id ID) String() string {
	switch id {
	case Invention:
		return "invention"
	case UtilityModel:
		return "utility_model"
	case Topography:
		return "topography"
	case TradeMark:
		return "trademark"
	case GeographicalOrigin:
		return "geographical_indication"
	case IndustrialDesign:
		return "industrial_design"
	case MadridMark:
		return "madrid_mark"
	case MadridMarkUA:
		return "madrid_mark_ua"
	case Copyright:
		return "copyright"
	case Decision:
		return "decision"
	case SupplementaryCert:
		return "supplementary_certificate"
	}
	return "unknown"
}
