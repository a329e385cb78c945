package biblio

type IndicationProduct struct {
	Class string `json:"Class,omitempty"`
}

type Priority struct {
	PriorityDate string `json:"PriorityDate,omitempty"`
}

type PriorityDetails struct {
	Priority []*Priority `json:"Priority,omitempty"`
}

// DesignDetails is the bibliographic section of an industrial design
// record.
type DesignDetails struct {
	DesignApplicationNumber  string                 `json:"DesignApplicationNumber,omitempty"`
	DesignApplicationDate    string                 `json:"DesignApplicationDate,omitempty"`
	RegistrationNumber       string                 `json:"RegistrationNumber,omitempty"`
	RecordEffectiveDate      string                 `json:"RecordEffectiveDate,omitempty"`
	DesignTitle              string                 `json:"DesignTitle,omitempty"`
	RecordPublicationDetails []*Publication         `json:"RecordPublicationDetails,omitempty"`
	IndicationProductDetails []*IndicationProduct   `json:"IndicationProductDetails,omitempty"`
	PriorityDetails          *PriorityDetails       `json:"PriorityDetails,omitempty"`
	ApplicantDetails         *ApplicantDetails      `json:"ApplicantDetails,omitempty"`
	DesignerDetails          *DesignerDetails       `json:"DesignerDetails,omitempty"`
	HolderDetails            *HolderDetails         `json:"HolderDetails,omitempty"`
	RepresentativeDetails    *RepresentativeDetails `json:"RepresentativeDetails,omitempty"`
	CorrespondenceAddress    rawSection             `json:"CorrespondenceAddress,omitempty"`
	DesignSpecimenDetails    rawSection             `json:"DesignSpecimenDetails,omitempty"`

	Stages []*Stage `json:"stages,omitempty"`

	RegistrationStatusColor string `json:"registration_status_color,omitempty"`
}

// Design is the industrial design record envelope.
type Design struct {
	DesignDetails  *DesignDetails `json:"DesignDetails,omitempty"`
	PaymentDetails rawSection     `json:"PaymentDetails,omitempty"`
	DocFlow        *DocFlow       `json:"DocFlow,omitempty"`
	Transactions   *Transactions  `json:"Transactions,omitempty"`
}
