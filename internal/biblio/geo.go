package biblio

type ApplicationPublication struct {
	PublicationDate string `json:"PublicationDate,omitempty"`
}

// GeoDetails is the bibliographic section of a geographical indication.
type GeoDetails struct {
	ApplicationNumber     string                 `json:"ApplicationNumber,omitempty"`
	ApplicationDate       string                 `json:"ApplicationDate,omitempty"`
	RegistrationNumber    string                 `json:"RegistrationNumber,omitempty"`
	RegistrationDate      string                 `json:"RegistrationDate,omitempty"`
	Indication            string                 `json:"Indication,omitempty"`
	ApplicantDetails      *ApplicantDetails      `json:"ApplicantDetails,omitempty"`
	HolderDetails         *HolderDetails         `json:"HolderDetails,omitempty"`
	RepresentativeDetails *RepresentativeDetails `json:"RepresentativeDetails,omitempty"`

	ApplicationPublicationDetails *ApplicationPublication `json:"ApplicationPublicationDetails,omitempty"`

	Stages []*Stage `json:"stages,omitempty"`
}

// Geo is the geographical indication record envelope.
type Geo struct {
	GeoDetails     *GeoDetails   `json:"GeoDetails,omitempty"`
	PaymentDetails rawSection    `json:"PaymentDetails,omitempty"`
	DocFlow        *DocFlow      `json:"DocFlow,omitempty"`
	Transactions   *Transactions `json:"Transactions,omitempty"`
}
