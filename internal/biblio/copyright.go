package biblio

// CopyrightDetails is the bibliography of a copyright registration
// certificate. Sections the pipeline only hides or publishes whole stay
// raw.
type CopyrightDetails struct {
	ApplicationNumber  string `json:"ApplicationNumber,omitempty"`
	ApplicationDate    string `json:"ApplicationDate,omitempty"`
	RegistrationNumber string `json:"RegistrationNumber,omitempty"`
	RegistrationDate   string `json:"RegistrationDate,omitempty"`
	Name               string `json:"Name,omitempty"`
	NameShort          string `json:"NameShort,omitempty"`

	AuthorDetails              *AuthorDetails `json:"AuthorDetails,omitempty"`
	Annotation                 string         `json:"Annotation,omitempty"`
	ApplicantDetails           rawSection     `json:"ApplicantDetails,omitempty"`
	CopyrightObjectKindDetails rawSection     `json:"CopyrightObjectKindDetails,omitempty"`
	EmployerDetails            rawSection     `json:"EmployerDetails,omitempty"`
	HolderDetails              rawSection     `json:"HolderDetails,omitempty"`
	PromulgationData           rawSection     `json:"PromulgationData,omitempty"`
	RegistrationKind           string         `json:"RegistrationKind,omitempty"`
	RegistrationKindCode       string         `json:"RegistrationKindCode,omitempty"`
	RegistrationOfficeCode     string         `json:"RegistrationOfficeCode,omitempty"`
	RepresentativeDetails      rawSection     `json:"RepresentativeDetails,omitempty"`
}

// ClearField hides a restrictable field by name. Unknown names are
// ignored so policy and record shape can evolve independently.
func (d *CopyrightDetails) ClearField(name string) {
	if d == nil {
		return
	}
	switch name {
	case "AuthorDetails":
		d.AuthorDetails = nil
	case "Annotation":
		d.Annotation = ""
	case "ApplicantDetails":
		d.ApplicantDetails = nil
	case "CopyrightObjectKindDetails":
		d.CopyrightObjectKindDetails = nil
	case "EmployerDetails":
		d.EmployerDetails = nil
	case "HolderDetails":
		d.HolderDetails = nil
	case "PromulgationData":
		d.PromulgationData = nil
	case "RegistrationKind":
		d.RegistrationKind = ""
	case "RegistrationKindCode":
		d.RegistrationKindCode = ""
	case "RegistrationOfficeCode":
		d.RegistrationOfficeCode = ""
	case "RepresentativeDetails":
		d.RepresentativeDetails = nil
	case "Name":
		d.Name = ""
	case "NameShort":
		d.NameShort = ""
	}
}

// Certificate is the copyright certificate record envelope.
type Certificate struct {
	CopyrightDetails *CopyrightDetails `json:"CopyrightDetails,omitempty"`
}

// DecisionDetails is the bibliography of a copyright transfer or license
// agreement decision.
type DecisionDetails struct {
	ApplicationNumber  string     `json:"ApplicationNumber,omitempty"`
	ApplicationDate    string     `json:"ApplicationDate,omitempty"`
	RegistrationNumber string     `json:"RegistrationNumber,omitempty"`
	RegistrationDate   string     `json:"RegistrationDate,omitempty"`
	PublicationDetails rawSection `json:"PublicationDetails,omitempty"`
	Name               string     `json:"Name,omitempty"`
	NameShort          string     `json:"NameShort,omitempty"`

	Annotation                 string           `json:"Annotation,omitempty"`
	ApplicantDetails           rawSection       `json:"ApplicantDetails,omitempty"`
	AuthorDetails              rawSection       `json:"AuthorDetails,omitempty"`
	CopyrightObjectKindDetails rawSection       `json:"CopyrightObjectKindDetails,omitempty"`
	DocFlow                    rawSection       `json:"DocFlow,omitempty"`
	LicenseeDetails            *LicenseeDetails `json:"LicenseeDetails,omitempty"`
	LicensorDetails            *LicensorDetails `json:"LicensorDetails,omitempty"`
	RegistrationKind           string           `json:"RegistrationKind,omitempty"`
	RegistrationKindCode       string           `json:"RegistrationKindCode,omitempty"`
	RegistrationOfficeCode     string           `json:"RegistrationOfficeCode,omitempty"`
	RepresentativeDetails      rawSection       `json:"RepresentativeDetails,omitempty"`
}

// ClearField hides a restrictable field by name.
func (d *DecisionDetails) ClearField(name string) {
	if d == nil {
		return
	}
	switch name {
	case "RegistrationNumber":
		d.RegistrationNumber = ""
	case "RegistrationDate":
		d.RegistrationDate = ""
	case "PublicationDetails":
		d.PublicationDetails = nil
	case "Name":
		d.Name = ""
	case "NameShort":
		d.NameShort = ""
	case "ApplicationNumber":
		d.ApplicationNumber = ""
	case "Annotation":
		d.Annotation = ""
	case "ApplicantDetails":
		d.ApplicantDetails = nil
	case "ApplicationDate":
		d.ApplicationDate = ""
	case "AuthorDetails":
		d.AuthorDetails = nil
	case "CopyrightObjectKindDetails":
		d.CopyrightObjectKindDetails = nil
	case "DocFlow":
		d.DocFlow = nil
	case "LicenseeDetails":
		d.LicenseeDetails = nil
	case "LicensorDetails":
		d.LicensorDetails = nil
	case "RegistrationKind":
		d.RegistrationKind = ""
	case "RegistrationKindCode":
		d.RegistrationKindCode = ""
	case "RegistrationOfficeCode":
		d.RegistrationOfficeCode = ""
	case "RepresentativeDetails":
		d.RepresentativeDetails = nil
	}
}

// Decision is the decision/agreement record envelope.
type Decision struct {
	DecisionDetails *DecisionDetails `json:"DecisionDetails,omitempty"`
}
