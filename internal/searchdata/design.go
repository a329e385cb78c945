package searchdata

import (
	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

// Register notice types that terminate an industrial design.
var designRedTypes = []string{
	"Termination",
	"TerminationByAppeal",
	"TerminationNoRenewalFee",
	"TotalInvalidationByAppeal",
	"TotalInvalidationByCourt",
	"TotalTerminationByOwner",
}

func designSearchData(app *appdomain.Application, design *biblio.Design) *biblio.SearchData {
	if design == nil || design.DesignDetails == nil {
		return nil
	}
	details := design.DesignDetails

	data := &biblio.SearchData{
		ObjState:            objState(app),
		AppNumber:           details.DesignApplicationNumber,
		AppDate:             details.DesignApplicationDate,
		ProtectiveDocNumber: details.RegistrationNumber,
		RightsDate:          details.RecordEffectiveDate,
		Applicant:           searchNames(applicantBooks(details.ApplicantDetails)),
		Inventor:            searchNames(designerBooks(details.DesignerDetails)),
		Owner:               searchNames(holderBooks(details.HolderDetails)),
		Agent:               agentNames(details.RepresentativeDetails),
	}
	if details.DesignTitle != "" {
		data.Title = details.DesignTitle
	}
	if data.AppNumber == "" && app != nil {
		data.AppNumber = app.AppNumber
	}
	if data.ObjState == biblio.ObjStateRegistered {
		if details.RegistrationStatusColor != "" {
			data.RegistrationStatusColor = details.RegistrationStatusColor
		} else {
			data.RegistrationStatusColor = redTransactionColor(design.Transactions, designRedTypes)
			details.RegistrationStatusColor = data.RegistrationStatusColor
		}
	}
	return data
}

// agentNames renders representatives as "name, address" entries.
func agentNames(details *biblio.RepresentativeDetails) []*biblio.SearchName {
	var names []*biblio.SearchName
	for _, book := range representativeBooks(details) {
		name := book.NameLine()
		if name == "" {
			continue
		}
		if address := book.AddressLine(); address != "" {
			name = name + ", " + address
		}
		names = append(names, &biblio.SearchName{Name: name})
	}
	return names
}
