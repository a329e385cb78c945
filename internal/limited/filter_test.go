package limited

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

func mustAllowList(t *testing.T, raw string) limdomain.AllowList {
	t.Helper()
	allow, err := limdomain.ParseAllowList(datatypes.JSON(raw))
	require.NoError(t, err)
	return allow
}

func TestFilterTrademarkHidesPartiesAndImage(t *testing.T) {
	tm := &biblio.TradeMark{
		TrademarkDetails: &biblio.TrademarkDetails{
			RegistrationNumber:    "12345",
			ApplicantDetails:      &biblio.ApplicantDetails{},
			HolderDetails:         &biblio.HolderDetails{},
			CorrespondenceAddress: []byte(`{"Address":"x"}`),
			MarkImageDetails: &biblio.MarkImageDetails{
				MarkImage: &biblio.MarkImage{
					MarkImageFilename:          "m202401234.jpg",
					MarkImageColourClaimedText: "red, black",
					MarkImageTypeNotice:        "",
				},
			},
		},
	}

	filterTrademark(tm)

	details := tm.TrademarkDetails
	assert.Nil(t, details.ApplicantDetails)
	assert.Nil(t, details.HolderDetails)
	assert.Nil(t, details.CorrespondenceAddress)
	assert.Empty(t, details.MarkImageDetails.MarkImage.MarkImageFilename)
	assert.Empty(t, details.MarkImageDetails.MarkImage.MarkImageColourClaimedText)
	assert.Equal(t, "12345", details.RegistrationNumber)
}

func TestFilterDesignHidesPartiesAndSpecimens(t *testing.T) {
	design := &biblio.Design{
		DesignDetails: &biblio.DesignDetails{
			DesignTitle:           "chair",
			ApplicantDetails:      &biblio.ApplicantDetails{},
			DesignerDetails:       &biblio.DesignerDetails{},
			HolderDetails:         &biblio.HolderDetails{},
			CorrespondenceAddress: []byte(`{}`),
			DesignSpecimenDetails: []byte(`[{"file":"1.jpg"}]`),
		},
	}

	filterDesign(design)

	details := design.DesignDetails
	assert.Nil(t, details.ApplicantDetails)
	assert.Nil(t, details.DesignerDetails)
	assert.Nil(t, details.HolderDetails)
	assert.Nil(t, details.CorrespondenceAddress)
	assert.Nil(t, details.DesignSpecimenDetails)
	assert.Equal(t, "chair", details.DesignTitle)
}

func newPatentRecord() *biblio.Record {
	return &biblio.Record{
		Patent: &biblio.PatentBiblio{
			I11:      "126999",
			AB:       "abstract",
			CL:       "claims",
			DE:       "description",
			I71:      []map[string]string{{"U": "applicant"}},
			I72:      []map[string]string{{"U": "inventor"}},
			I73:      []map[string]string{{"U": "owner"}},
			I98:      "address",
			I98Index: "03035",
		},
	}
}

func TestFilterPatentFamilyDefaultsHideEverything(t *testing.T) {
	record := newPatentRecord()

	filterPatentFamily(record, limdomain.AllowList{})

	patent := record.Patent
	assert.Empty(t, patent.AB)
	assert.Empty(t, patent.CL)
	assert.Empty(t, patent.DE)
	assert.Nil(t, patent.I71)
	assert.Nil(t, patent.I72)
	assert.Nil(t, patent.I73)
	assert.Empty(t, patent.I98)
	assert.Empty(t, patent.I98Index)
	assert.Equal(t, "126999", patent.I11)
}

func TestFilterPatentFamilyAllowListKeepsSections(t *testing.T) {
	record := newPatentRecord()
	allow := mustAllowList(t, `{"AB": true, "I_73": true}`)

	filterPatentFamily(record, allow)

	patent := record.Patent
	assert.Equal(t, "abstract", patent.AB)
	assert.NotNil(t, patent.I73)
	assert.Empty(t, patent.CL)
	assert.Nil(t, patent.I71)
}

func TestFilterCopyrightDefaultsKeepOnlyTitles(t *testing.T) {
	certificate := &biblio.Certificate{
		CopyrightDetails: &biblio.CopyrightDetails{
			Name:          "Повна назва твору",
			NameShort:     "Назва",
			Annotation:    "annotation",
			AuthorDetails: &biblio.AuthorDetails{},
			HolderDetails: []byte(`{}`),
		},
	}

	filterCopyright(certificate, limdomain.AllowList{})

	details := certificate.CopyrightDetails
	assert.Equal(t, "Повна назва твору", details.Name)
	assert.Equal(t, "Назва", details.NameShort)
	assert.Empty(t, details.Annotation)
	assert.Nil(t, details.AuthorDetails)
	assert.Nil(t, details.HolderDetails)
}

func TestFilterCopyrightAllowListOverridesBothWays(t *testing.T) {
	certificate := &biblio.Certificate{
		CopyrightDetails: &biblio.CopyrightDetails{
			Name:       "title",
			Annotation: "annotation",
		},
	}
	allow := mustAllowList(t, `{"Annotation": true, "Name": false}`)

	filterCopyright(certificate, allow)

	assert.Equal(t, "annotation", certificate.CopyrightDetails.Annotation)
	assert.Empty(t, certificate.CopyrightDetails.Name)
}

func newDecision() *biblio.Decision {
	return &biblio.Decision{
		DecisionDetails: &biblio.DecisionDetails{
			ApplicationNumber:  "c202400001",
			RegistrationNumber: "7",
			RegistrationDate:   "2024-02-01",
			Name:               "agreement",
			Annotation:         "annotation",
			LicenseeDetails: &biblio.LicenseeDetails{
				Licensee: []*biblio.Licensee{{
					LicenseeAddressBook: &biblio.AddressBook{
						FormattedNameAddress: &biblio.FormattedNameAddress{
							Name:    &biblio.PartyName{},
							Address: &biblio.PartyAddress{AddressCountryCode: "UA"},
						},
					},
				}},
			},
		},
	}
}

func TestFilterDecisionDefaults(t *testing.T) {
	decision := newDecision()

	filterDecision(decision, limdomain.AllowList{})

	details := decision.DecisionDetails
	assert.Equal(t, "7", details.RegistrationNumber)
	assert.Equal(t, "2024-02-01", details.RegistrationDate)
	assert.Equal(t, "agreement", details.Name)
	assert.Empty(t, details.ApplicationNumber)
	assert.Empty(t, details.Annotation)
	assert.Nil(t, details.LicenseeDetails)
}

func TestFilterDecisionNestedLicenseeSettings(t *testing.T) {
	decision := newDecision()
	allow := mustAllowList(t, `{"LicenseeDetails": {"Address": false, "Name": true}}`)

	filterDecision(decision, allow)

	details := decision.DecisionDetails
	require.NotNil(t, details.LicenseeDetails)
	require.Len(t, details.LicenseeDetails.Licensee, 1)
	party := details.LicenseeDetails.Licensee[0].LicenseeAddressBook.FormattedNameAddress
	assert.Nil(t, party.Address)
	assert.NotNil(t, party.Name)
}
