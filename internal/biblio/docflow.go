package biblio

// DocRecord describes one correspondence document in the mixed-case
// docflow shape used by trademark, design and geo exports.
type DocRecord struct {
	DocType        string `json:"DocType,omitempty"`
	DocRegNumber   string `json:"DocRegNumber,omitempty"`
	DocBarCode     string `json:"DocBarCode,omitempty"`
	DocSendingDate string `json:"DocSendingDate,omitempty"`
	DocIDDocCEAD   string `json:"DocIdDocCEAD,omitempty"`
}

type DocFlowDocument struct {
	DocRecord *DocRecord `json:"DocRecord,omitempty"`
}

type DocFlow struct {
	Documents []*DocFlowDocument `json:"Documents,omitempty"`
}

// The patent family exports docflow with upper-case keys and extra
// examination stage and fee-collection lists.

type UpperDocRecord struct {
	DocType        string `json:"DOCTYPE,omitempty"`
	DocRegNumber   string `json:"DOCREGNUMBER,omitempty"`
	DocBarCode     string `json:"DOCBARCODE,omitempty"`
	DocSendingDate string `json:"DOCSENDINGDATE,omitempty"`
	DocIDDocCEAD   string `json:"DOCIDDOCCEAD,omitempty"`
}

type UpperDocFlowDocument struct {
	DocRecord *UpperDocRecord `json:"DOCRECORD,omitempty"`
}

type StageRecord struct {
	Stage   string `json:"STAGE,omitempty"`
	EndDate string `json:"ENDDATE,omitempty"`
}

type UpperStage struct {
	StageRecord *StageRecord `json:"STAGERECORD,omitempty"`
}

type CollectionRecord struct {
	CLCode string `json:"CLCODE,omitempty"`
}

type UpperCollection struct {
	CLRecord *CollectionRecord `json:"CLRECORD,omitempty"`
}

type UpperDocFlow struct {
	Documents   []*UpperDocFlowDocument `json:"DOCUMENTS,omitempty"`
	Stages      []*UpperStage           `json:"STAGES,omitempty"`
	Collections []*UpperCollection      `json:"COLLECTIONS,omitempty"`
}
