package biblio

// PatentBiblio carries the INID-coded bibliography shared by inventions,
// utility models and topographies. The same shape appears under "Claim"
// for pending applications and under "Patent" for protective documents.
type PatentBiblio struct {
	I11 string `json:"I_11,omitempty"`
	I21 string `json:"I_21,omitempty"`
	I22 string `json:"I_22,omitempty"`
	I24 string `json:"I_24,omitempty"`

	// Publication dates of the application (I_43) and of the protective
	// document (I_45), with the derived "issue/year" bulletin strings.
	I43D      []string `json:"I_43.D,omitempty"`
	I43BulStr string   `json:"I_43_bul_str,omitempty"`
	I45D      []string `json:"I_45.D,omitempty"`
	I45BulStr string   `json:"I_45_bul_str,omitempty"`

	// Titles and parties arrive as language-keyed maps ({"U": "...",
	// "E": "..."}); I_73 owners may additionally carry an EDRPOU code.
	I54 []map[string]string `json:"I_54,omitempty"`
	I71 []map[string]string `json:"I_71,omitempty"`
	I72 []map[string]string `json:"I_72,omitempty"`
	I73 []map[string]string `json:"I_73,omitempty"`
	I74 string              `json:"I_74,omitempty"`

	I98      string `json:"I_98,omitempty"`
	I98Index string `json:"I_98_Index,omitempty"`

	AB string `json:"AB,omitempty"`
	CL string `json:"CL,omitempty"`
	DE string `json:"DE,omitempty"`
}

// SPCOwner is an owner entry of a supplementary protection certificate.
type SPCOwner struct {
	NU string `json:"N.U,omitempty"`
}

// PatentCertificate is the supplementary protection certificate biblio.
type PatentCertificate struct {
	I11 string      `json:"I_11,omitempty"`
	I73 []*SPCOwner `json:"I_73,omitempty"`
	I95 string      `json:"I_95,omitempty"`
}
