package biblio

// Object states of the simple-search block.
const (
	ObjStateApplication = 1
	ObjStateRegistered  = 2
)

// Registration status colors.
const (
	StatusColorGreen  = "green"
	StatusColorRed    = "red"
	StatusColorYellow = "yellow"
)

// SearchName is one party entry of the simple-search block.
type SearchName struct {
	Name string `json:"name"`
}

// SearchData is the flattened simple-search block merged into every
// indexed record. Title is a string for most types and a list of
// language variants for the patent family.
type SearchData struct {
	ObjState                int           `json:"obj_state"`
	AppNumber               string        `json:"app_number,omitempty"`
	AppDate                 string        `json:"app_date,omitempty"`
	ProtectiveDocNumber     string        `json:"protective_doc_number,omitempty"`
	RightsDate              string        `json:"rights_date,omitempty"`
	Applicant               []*SearchName `json:"applicant,omitempty"`
	Inventor                []*SearchName `json:"inventor,omitempty"`
	Owner                   []*SearchName `json:"owner,omitempty"`
	Agent                   []*SearchName `json:"agent,omitempty"`
	Title                   interface{}   `json:"title,omitempty"`
	RegistrationStatusColor string        `json:"registration_status_color,omitempty"`
}
