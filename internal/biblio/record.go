package biblio

import (
	"encoding/json"

	"github.com/ukripo/sisindex/internal/objtype"
)

// Record is the envelope of one exported application. Exactly one
// bibliographic section is populated per object type; stray root-level
// sections (PaymentDetails, DocFlow, Transactions in either case) appear
// in legacy exports and are re-homed by the fixers.
type Record struct {
	Document *Document `json:"Document,omitempty"`

	TradeMark       *TradeMark       `json:"TradeMark,omitempty"`
	Design          *Design          `json:"Design,omitempty"`
	Claim           *PatentBiblio    `json:"Claim,omitempty"`
	Patent          *PatentBiblio    `json:"Patent,omitempty"`
	MadridTradeMark *MadridTradeMark `json:"MadridTradeMark,omitempty"`
	Geo             *Geo             `json:"Geo,omitempty"`
	Certificate     *Certificate     `json:"Certificate,omitempty"`
	Decision        *Decision        `json:"Decision,omitempty"`

	PatentCertificate *PatentCertificate `json:"Patent_Certificate,omitempty"`

	// Patent-family docflow, uppercase shape, at the root.
	DocFlowUpper *UpperDocFlow `json:"DOCFLOW,omitempty"`

	// Stray sections awaiting re-homing by the fixers.
	StrayPaymentDetails rawSection    `json:"PaymentDetails,omitempty"`
	StrayDocFlow        *DocFlow      `json:"DocFlow,omitempty"`
	StrayTransactions   *Transactions `json:"Transactions,omitempty"`

	// Patent-family register notices, flat at the root.
	FlatTransactions []map[string]interface{} `json:"transactions,omitempty"`

	SearchData *SearchData `json:"search_data,omitempty"`

	// Examination timeline of the patent family, derived at indexing
	// time. Trademark, design and geo records carry theirs inside the
	// bibliographic details instead.
	Stages []*Stage `json:"stages,omitempty"`
}

// ObjType returns the object type of the record, 0 when unknown.
func (r *Record) ObjType() objtype.ID {
	if r == nil || r.Document == nil {
		return 0
	}
	return r.Document.IDObjType
}

// Biblio returns the patent-family bibliography, preferring the
// protective document over the application.
func (r *Record) Biblio() *PatentBiblio {
	if r == nil {
		return nil
	}
	if r.Patent != nil {
		return r.Patent
	}
	return r.Claim
}

// CopyrightBiblio returns the copyright-family details, certificate or
// decision, whichever the record carries.
func (r *Record) CopyrightBiblio() (certificate *CopyrightDetails, decision *DecisionDetails) {
	if r == nil {
		return nil, nil
	}
	if r.Certificate != nil {
		certificate = r.Certificate.CopyrightDetails
	}
	if r.Decision != nil {
		decision = r.Decision.DecisionDetails
	}
	return certificate, decision
}

// Parse decodes a raw export into a typed record.
func Parse(raw []byte) (*Record, error) {
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Marshal renders the record back to JSON for indexing.
func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
