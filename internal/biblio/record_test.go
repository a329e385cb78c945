package biblio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukripo/sisindex/internal/objtype"
)

func TestParsePublicationDetailsObjectForm(t *testing.T) {
	raw := []byte(`{
		"Document": {"idObjType": 4},
		"TradeMark": {
			"TrademarkDetails": {
				"ApplicationNumber": "m202400001",
				"PublicationDetails": {
					"Publication": {
						"PublicationDate": "15.03.2024",
						"PublicationIdentifier": "5"
					}
				}
			}
		}
	}`)

	record, err := Parse(raw)
	require.NoError(t, err)
	require.NotNil(t, record.TradeMark)
	require.Len(t, record.TradeMark.TrademarkDetails.PublicationDetails, 1)
	assert.Equal(t, "15.03.2024", record.TradeMark.TrademarkDetails.PublicationDetails[0].PublicationDate)
	assert.Equal(t, objtype.TradeMark, record.ObjType())
}

func TestParsePublicationDetailsArrayForm(t *testing.T) {
	raw := []byte(`{
		"TradeMark": {
			"TrademarkDetails": {
				"PublicationDetails": [
					{"PublicationDate": "2024-03-15", "PublicationIdentifier": "5/2024"},
					{"PublicationDate": "2024-04-01", "PublicationIdentifier": "6/2024"}
				]
			}
		}
	}`)

	record, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, record.TradeMark.TrademarkDetails.PublicationDetails, 2)
	assert.Equal(t, "6/2024", record.TradeMark.TrademarkDetails.PublicationDetails[1].PublicationIdentifier)
}

func TestFlexIntAcceptsStringAndNumber(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"MarkCurrentStatusCodeType": "4000"}`), &doc))
	assert.Equal(t, FlexInt(4000), doc.MarkCurrentStatusCodeType)

	require.NoError(t, json.Unmarshal([]byte(`{"MarkCurrentStatusCodeType": 5000}`), &doc))
	assert.Equal(t, FlexInt(5000), doc.MarkCurrentStatusCodeType)
}

func TestBiblioPrefersPatentOverClaim(t *testing.T) {
	record := &Record{
		Claim:  &PatentBiblio{I21: "a202400001"},
		Patent: &PatentBiblio{I11: "11111", I21: "a202400001"},
	}
	assert.Equal(t, "11111", record.Biblio().I11)

	record = &Record{Claim: &PatentBiblio{I21: "a202400002"}}
	assert.Equal(t, "a202400002", record.Biblio().I21)
}

func TestDropEmptyOriginals(t *testing.T) {
	ua := &FormattedNameAddress{
		Name: &PartyName{FreeFormatName: &FreeFormatName{FreeFormatNameDetails: &FreeFormatNameDetails{
			FreeFormatNameLine:         "ТОВ Тест",
			FreeFormatNameLineOriginal: "Test LLC",
		}}},
		Address: &PartyAddress{
			AddressCountryCode: "UA",
			FreeFormatAddress: &FreeFormatAddress{
				FreeFormatAddressLine:         "Київ",
				FreeFormatAddressLineOriginal: "Kyiv",
			},
		},
	}
	ua.DropEmptyOriginals()
	assert.Empty(t, ua.Name.Details().FreeFormatNameLineOriginal)
	assert.Empty(t, ua.Address.FreeFormatAddress.FreeFormatAddressLineOriginal)

	foreign := &FormattedNameAddress{
		Name: &PartyName{FreeFormatName: &FreeFormatName{FreeFormatNameDetails: &FreeFormatNameDetails{
			FreeFormatNameLine:         "Тест ГмбХ",
			FreeFormatNameLineOriginal: "Test GmbH",
		}}},
		Address: &PartyAddress{
			AddressCountryCode: "DE",
			FreeFormatAddress: &FreeFormatAddress{
				FreeFormatAddressLine:         "Берлін",
				FreeFormatAddressLineOriginal: "",
			},
		},
	}
	foreign.DropEmptyOriginals()
	assert.Equal(t, "Test GmbH", foreign.Name.Details().FreeFormatNameLineOriginal)
	assert.Empty(t, foreign.Address.FreeFormatAddress.FreeFormatAddressLineOriginal)
}
