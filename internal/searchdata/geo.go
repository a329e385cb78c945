package searchdata

import (
	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

func geoSearchData(app *appdomain.Application, geo *biblio.Geo) *biblio.SearchData {
	if geo == nil || geo.GeoDetails == nil {
		return nil
	}
	details := geo.GeoDetails

	data := &biblio.SearchData{
		ObjState:            objState(app),
		AppNumber:           details.ApplicationNumber,
		AppDate:             details.ApplicationDate,
		ProtectiveDocNumber: details.RegistrationNumber,
		RightsDate:          details.RegistrationDate,
		Applicant:           searchNames(applicantBooks(details.ApplicantDetails)),
		Owner:               searchNames(holderBooks(details.HolderDetails)),
		Agent:               searchNames(representativeBooks(details.RepresentativeDetails)),
	}
	if details.Indication != "" {
		data.Title = details.Indication
	}
	if data.AppNumber == "" && app != nil {
		data.AppNumber = app.AppNumber
	}
	// Geographical indications have no termination notices; a registered
	// indication is simply in force.
	if data.ObjState == biblio.ObjStateRegistered {
		data.RegistrationStatusColor = biblio.StatusColorGreen
	}
	return data
}
