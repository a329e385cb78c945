// Package searchdata builds the flattened simple-search block that is
// merged into every indexed record.
package searchdata

import (
	"time"

	"go.uber.org/fx"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	"github.com/ukripo/sisindex/internal/objtype"
)

// Service assembles search data per object type.
type Service struct{}

func New() *Service { return &Service{} }

// Create builds the search block for the record and attaches it. Records
// of unknown type get no block.
func (s *Service) Create(app *appdomain.Application, record *biblio.Record) {
	if record == nil {
		return
	}
	var data *biblio.SearchData
	switch record.ObjType() {
	case objtype.TradeMark:
		data = trademarkSearchData(app, record.TradeMark)
	case objtype.IndustrialDesign:
		data = designSearchData(app, record.Design)
	case objtype.Invention, objtype.UtilityModel, objtype.Topography:
		data = patentSearchData(app, record)
	case objtype.SupplementaryCert:
		data = certificateSearchData(app, record.PatentCertificate)
	case objtype.MadridMark, objtype.MadridMarkUA:
		data = madridSearchData(app, record.MadridTradeMark)
	case objtype.GeographicalOrigin:
		data = geoSearchData(app, record.Geo)
	case objtype.Copyright:
		data = copyrightSearchData(app, record)
	case objtype.Decision:
		data = decisionSearchData(app, record.Decision)
	}
	record.SearchData = data
}

// objState resolves the object state from the registry row. A "0"
// registration number is a placeholder, not a protective document.
func objState(app *appdomain.Application) int {
	if app != nil && app.RegistrationNumber != "" && app.RegistrationNumber != "0" {
		return biblio.ObjStateRegistered
	}
	return biblio.ObjStateApplication
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// searchNames builds party entries from address books; foreign parties
// contribute a second entry with the original-language name line.
func searchNames(books []*biblio.AddressBook) []*biblio.SearchName {
	var names []*biblio.SearchName
	for _, book := range books {
		if name := book.NameLine(); name != "" {
			names = append(names, &biblio.SearchName{Name: name})
		}
		if original := book.NameLineOriginal(); original != "" {
			names = append(names, &biblio.SearchName{Name: original})
		}
	}
	return names
}

func applicantBooks(details *biblio.ApplicantDetails) []*biblio.AddressBook {
	if details == nil {
		return nil
	}
	books := make([]*biblio.AddressBook, 0, len(details.Applicant))
	for _, applicant := range details.Applicant {
		books = append(books, applicant.ApplicantAddressBook)
	}
	return books
}

func holderBooks(details *biblio.HolderDetails) []*biblio.AddressBook {
	if details == nil {
		return nil
	}
	books := make([]*biblio.AddressBook, 0, len(details.Holder))
	for _, holder := range details.Holder {
		books = append(books, holder.HolderAddressBook)
	}
	return books
}

func representativeBooks(details *biblio.RepresentativeDetails) []*biblio.AddressBook {
	if details == nil {
		return nil
	}
	books := make([]*biblio.AddressBook, 0, len(details.Representative))
	for _, representative := range details.Representative {
		books = append(books, representative.RepresentativeAddressBook)
	}
	return books
}

func designerBooks(details *biblio.DesignerDetails) []*biblio.AddressBook {
	if details == nil {
		return nil
	}
	books := make([]*biblio.AddressBook, 0, len(details.Designer))
	for _, designer := range details.Designer {
		books = append(books, designer.DesignerAddressBook)
	}
	return books
}

// redTransactionColor resolves a status color from the last register
// notice: a terminating notice turns the document red, anything else
// leaves it green.
func redTransactionColor(transactions *biblio.Transactions, redTypes []string) string {
	last := transactions.LastType()
	for _, redType := range redTypes {
		if last == redType {
			return biblio.StatusColorRed
		}
	}
	return biblio.StatusColorGreen
}

// Module wires the search-data creator.
var Module = fx.Module("searchdata",
	fx.Provide(New),
)
