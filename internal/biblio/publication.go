package biblio

import "encoding/json"

// Publication is one bulletin publication notice.
type Publication struct {
	PublicationDate       string `json:"PublicationDate,omitempty"`
	PublicationIdentifier string `json:"PublicationIdentifier,omitempty"`
	PublicationNumber     string `json:"PublicationNumber,omitempty"`
}

// PublicationDetails is a list of publication notices. Upstream exports
// carry it in two shapes: the normalized array form and a legacy object
// form {"Publication": {...}} holding a single notice. Unmarshalling
// accepts both; marshalling always emits the array form.
type PublicationDetails []*Publication

func (d *PublicationDetails) UnmarshalJSON(raw []byte) error {
	var list []*Publication
	if err := json.Unmarshal(raw, &list); err == nil {
		*d = list
		return nil
	}

	var wrapped struct {
		Publication *Publication `json:"Publication"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return err
	}
	if wrapped.Publication != nil {
		*d = PublicationDetails{wrapped.Publication}
	} else {
		*d = nil
	}
	return nil
}
