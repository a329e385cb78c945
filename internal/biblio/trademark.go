package biblio

// MarkImage describes the mark image file and its colour/notice metadata.
type MarkImage struct {
	MarkImageFilename          string `json:"MarkImageFilename,omitempty"`
	MarkImageColourClaimedText string `json:"MarkImageColourClaimedText,omitempty"`
	MarkImageTypeNotice        string `json:"MarkImageTypeNotice,omitempty"`
}

type MarkImageDetails struct {
	MarkImage *MarkImage `json:"MarkImage,omitempty"`
}

type VerbalElement struct {
	Text string `json:"#text,omitempty"`
}

type WordMarkSpecification struct {
	MarkSignificantVerbalElement []*VerbalElement `json:"MarkSignificantVerbalElement,omitempty"`
}

type AssociatedRegistration struct {
	AssociatedRegistrationDate string `json:"AssociatedRegistrationDate,omitempty"`
}

type DivisionalApplication struct {
	AssociatedRegistration *AssociatedRegistration `json:"AssociatedRegistration,omitempty"`
}

type AssociatedRegistrationDetails struct {
	DivisionalApplication []*DivisionalApplication `json:"DivisionalApplication,omitempty"`
}

type AssociatedRegistrationApplication struct {
	AssociatedRegistrationDetails *AssociatedRegistrationDetails `json:"AssociatedRegistrationDetails,omitempty"`
}

type AssociatedRegistrationApplicationDetails struct {
	AssociatedRegistrationApplication *AssociatedRegistrationApplication `json:"AssociatedRegistrationApplication,omitempty"`
}

// TrademarkDetails is the bibliographic section of a trademark record.
type TrademarkDetails struct {
	ApplicationNumber     string                 `json:"ApplicationNumber,omitempty"`
	ApplicationDate       string                 `json:"ApplicationDate,omitempty"`
	RegistrationNumber    string                 `json:"RegistrationNumber,omitempty"`
	RegistrationDate      string                 `json:"RegistrationDate,omitempty"`
	TerminationDate       string                 `json:"TerminationDate,omitempty"`
	Code441               string                 `json:"Code_441,omitempty"`
	Code450               string                 `json:"Code_450,omitempty"`
	PublicationDetails    PublicationDetails     `json:"PublicationDetails,omitempty"`
	ApplicantDetails      *ApplicantDetails      `json:"ApplicantDetails,omitempty"`
	HolderDetails         *HolderDetails         `json:"HolderDetails,omitempty"`
	RepresentativeDetails *RepresentativeDetails `json:"RepresentativeDetails,omitempty"`
	CorrespondenceAddress rawSection             `json:"CorrespondenceAddress,omitempty"`
	MarkImageDetails      *MarkImageDetails      `json:"MarkImageDetails,omitempty"`
	WordMarkSpecification *WordMarkSpecification `json:"WordMarkSpecification,omitempty"`

	AssociatedRegistrationApplicationDetails *AssociatedRegistrationApplicationDetails `json:"AssociatedRegistrationApplicationDetails,omitempty"`

	// ExhibitionPriorityDetails arrives either as the normalized object or
	// as a bare list; the fixer wraps the list form.
	ExhibitionPriorityDetails rawSection `json:"ExhibitionPriorityDetails,omitempty"`

	Stages []*Stage `json:"stages,omitempty"`

	RegistrationStatusColor string `json:"registration_status_color,omitempty"`
}

// TradeMark is the trademark record envelope.
type TradeMark struct {
	TrademarkDetails *TrademarkDetails `json:"TrademarkDetails,omitempty"`
	PaymentDetails   rawSection        `json:"PaymentDetails,omitempty"`
	DocFlow          *DocFlow          `json:"DocFlow,omitempty"`
	Transactions     *Transactions     `json:"Transactions,omitempty"`
}
