package biblio

type MadridName struct {
	NameL string `json:"NAMEL,omitempty"`
}

type MadridParty struct {
	Name *MadridName `json:"NAME,omitempty"`
}

type MadridImage struct {
	Text string `json:"@TEXT,omitempty"`
}

// MadridDetails is the WIPO-shaped bibliography of an international mark.
// Date attributes arrive compact (YYYYMMDD); the fixer rewrites them to
// ISO form.
type MadridDetails struct {
	IntRegD string `json:"@INTREGD,omitempty"`
	ExpiryD string `json:"@EXPIRYD,omitempty"`
	RegEDat string `json:"@REGEDAT,omitempty"`
	RegRDat string `json:"@REGRDAT,omitempty"`

	Code441 string `json:"Code_441,omitempty"`
	Code450 string `json:"Code_450,omitempty"`

	HolGr *MadridParty `json:"HOLGR,omitempty"`
	RepGr *MadridParty `json:"REPGR,omitempty"`
	Image *MadridImage `json:"IMAGE,omitempty"`
}

// MadridTradeMark is the international registration record envelope.
type MadridTradeMark struct {
	TradeMarkDetails *MadridDetails `json:"TradeMarkDetails,omitempty"`
}

// CompactDates lists the detail fields carrying compact dates, as
// pointers so the fixer can rewrite them in place.
func (d *MadridDetails) CompactDates() []*string {
	if d == nil {
		return nil
	}
	return []*string{&d.IntRegD, &d.ExpiryD, &d.RegEDat, &d.RegRDat}
}
