package biblio

// TransactionPublication wraps the single publication notice inside a
// transaction body.
type TransactionPublication struct {
	Publication *Publication `json:"Publication,omitempty"`
}

// TransactionBody carries the payload of a register transaction. Legacy
// exports put PublicationDate/PublicationNumber directly on the body; the
// fixer re-homes them under PublicationDetails.
type TransactionBody struct {
	PublicationDetails *TransactionPublication `json:"PublicationDetails,omitempty"`
	PublicationDate    string                  `json:"PublicationDate,omitempty"`
	PublicationNumber  string                  `json:"PublicationNumber,omitempty"`
	RegisterDate       string                  `json:"RegisterDate,omitempty"`
}

// Transaction is one register notice (status change, renewal, termination).
type Transaction struct {
	Type               string           `json:"@type,omitempty"`
	RegistrationNumber string           `json:"@registrationNumber,omitempty"`
	BulletinDate       string           `json:"@bulletinDate,omitempty"`
	TransactionBody    *TransactionBody `json:"TransactionBody,omitempty"`
}

type Transactions struct {
	Transaction []*Transaction `json:"Transaction,omitempty"`
}

// LastType returns the type of the most recent transaction, empty when
// there are none.
func (t *Transactions) LastType() string {
	if t == nil || len(t.Transaction) == 0 {
		return ""
	}
	return t.Transaction[len(t.Transaction)-1].Type
}
