package searchdata

import (
	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

// registrationVoided is the registry status of an invalidated copyright
// registration.
const registrationVoided = "Реєстрація недійсна"

func copyrightSearchData(app *appdomain.Application, record *biblio.Record) *biblio.SearchData {
	certificate := record.Certificate
	if certificate == nil || certificate.CopyrightDetails == nil {
		return nil
	}
	details := certificate.CopyrightDetails

	// Copyright records exist only once registered.
	data := &biblio.SearchData{
		ObjState:            biblio.ObjStateRegistered,
		AppNumber:           details.ApplicationNumber,
		AppDate:             details.ApplicationDate,
		ProtectiveDocNumber: details.RegistrationNumber,
		RightsDate:          details.RegistrationDate,
	}
	if authors := details.AuthorDetails; authors != nil {
		for _, author := range authors.Author {
			if name := author.AuthorAddressBook.NameLine(); name != "" {
				data.Owner = append(data.Owner, &biblio.SearchName{Name: name})
			}
		}
	}
	if details.Name != "" {
		data.Title = details.Name
	}
	if data.AppNumber == "" && app != nil {
		data.AppNumber = app.AppNumber
	}
	data.RegistrationStatusColor = biblio.StatusColorGreen
	if record.Document != nil && record.Document.RegistrationStatus == registrationVoided {
		data.RegistrationStatusColor = biblio.StatusColorRed
	}
	return data
}

func decisionSearchData(app *appdomain.Application, decision *biblio.Decision) *biblio.SearchData {
	if decision == nil || decision.DecisionDetails == nil {
		return nil
	}
	details := decision.DecisionDetails

	data := &biblio.SearchData{
		ObjState:            objState(app),
		AppNumber:           details.ApplicationNumber,
		AppDate:             details.ApplicationDate,
		ProtectiveDocNumber: details.RegistrationNumber,
		RightsDate:          details.RegistrationDate,
	}
	if details.Name != "" {
		data.Title = details.Name
	}
	if data.AppNumber == "" && app != nil {
		data.AppNumber = app.AppNumber
	}
	if data.ObjState == biblio.ObjStateRegistered {
		data.RegistrationStatusColor = biblio.StatusColorGreen
	}
	return data
}
