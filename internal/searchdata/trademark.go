package searchdata

import (
	"strings"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

// Register notice types that terminate a trademark.
var trademarkRedTypes = []string{
	"TerminationNoRenewalFee",
	"TotalTerminationByOwner",
	"TotalInvalidationByCourt",
	"TotalTerminationByCourt",
	"TotalInvalidationByAppeal",
}

func trademarkSearchData(app *appdomain.Application, tm *biblio.TradeMark) *biblio.SearchData {
	if tm == nil || tm.TrademarkDetails == nil {
		return nil
	}
	details := tm.TrademarkDetails

	data := &biblio.SearchData{
		ObjState:            objState(app),
		AppNumber:           details.ApplicationNumber,
		AppDate:             trademarkAppDate(app, details),
		ProtectiveDocNumber: details.RegistrationNumber,
		RightsDate:          details.RegistrationDate,
		Applicant:           searchNames(applicantBooks(details.ApplicantDetails)),
		Owner:               searchNames(holderBooks(details.HolderDetails)),
		Agent:               agentNames(details.RepresentativeDetails),
		Title:               trademarkTitle(details.WordMarkSpecification),
	}
	if data.AppNumber == "" && app != nil {
		data.AppNumber = app.AppNumber
	}
	if data.ObjState == biblio.ObjStateRegistered {
		// The export's own color wins when present.
		if details.RegistrationStatusColor != "" {
			data.RegistrationStatusColor = details.RegistrationStatusColor
		} else {
			data.RegistrationStatusColor = redTransactionColor(tm.Transactions, trademarkRedTypes)
			details.RegistrationStatusColor = data.RegistrationStatusColor
		}
	}
	return data
}

// trademarkAppDate prefers the bibliographic date and falls back to the
// registry row's application date, then its input date.
func trademarkAppDate(app *appdomain.Application, details *biblio.TrademarkDetails) string {
	if details.ApplicationDate != "" {
		return details.ApplicationDate
	}
	if app == nil {
		return ""
	}
	if date := isoDate(app.AppDate); date != "" {
		return date
	}
	return isoDate(app.AppInputDate)
}

func trademarkTitle(spec *biblio.WordMarkSpecification) interface{} {
	if spec == nil || len(spec.MarkSignificantVerbalElement) == 0 {
		return nil
	}
	parts := make([]string, 0, len(spec.MarkSignificantVerbalElement))
	for _, element := range spec.MarkSignificantVerbalElement {
		if element.Text != "" {
			parts = append(parts, element.Text)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return strings.Join(parts, ", ")
}
