package searchdata

import (
	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

// placeholderDate marks an absent I_24 rights date in legacy exports.
const placeholderDate = "1899-12-30"

func patentSearchData(app *appdomain.Application, record *biblio.Record) *biblio.SearchData {
	section := record.Biblio()
	if section == nil {
		return nil
	}

	data := &biblio.SearchData{
		ObjState:            objState(app),
		AppNumber:           section.I21,
		AppDate:             section.I22,
		ProtectiveDocNumber: section.I11,
		Applicant:           langValues(section.I71),
		Inventor:            langValues(section.I72),
		Owner:               langValues(section.I73),
		Title:               patentTitles(section.I54),
	}
	if section.I24 != "" && section.I24 != placeholderDate {
		data.RightsDate = section.I24
	}
	if section.I74 != "" {
		data.Agent = []*biblio.SearchName{{Name: section.I74}}
	}
	if data.ObjState == biblio.ObjStateRegistered && record.Document != nil {
		data.RegistrationStatusColor = patentStatusColor(record.Document.RegistrationStatus)
	}
	return data
}

// langValues flattens language-keyed party maps, preferring the
// Ukrainian variant.
func langValues(entries []map[string]string) []*biblio.SearchName {
	var names []*biblio.SearchName
	for _, entry := range entries {
		if value := langValue(entry); value != "" {
			names = append(names, &biblio.SearchName{Name: value})
		}
	}
	return names
}

// langValue picks the display value of a language-keyed entry. I_73
// owners may carry an EDRPOU company code, which is never a name.
func langValue(entry map[string]string) string {
	for _, key := range []string{"U", "E", "R"} {
		if value := entry[key]; value != "" {
			return value
		}
	}
	for key, value := range entry {
		if key == "EDRPOU" || value == "" {
			continue
		}
		return value
	}
	return ""
}

// patentTitles keeps every language variant of the title as a list.
func patentTitles(entries []map[string]string) interface{} {
	var titles []string
	for _, entry := range entries {
		if value := langValue(entry); value != "" {
			titles = append(titles, value)
		}
	}
	if len(titles) == 0 {
		return nil
	}
	return titles
}

// patentStatusColor maps the registry status letter to a color: active
// documents are green, terminated red, suspended yellow. Unknown
// statuses render red.
func patentStatusColor(status string) string {
	switch status {
	case "A":
		return biblio.StatusColorGreen
	case "N":
		return biblio.StatusColorRed
	case "T":
		return biblio.StatusColorYellow
	default:
		return biblio.StatusColorRed
	}
}

func certificateSearchData(app *appdomain.Application, certificate *biblio.PatentCertificate) *biblio.SearchData {
	if certificate == nil {
		return nil
	}

	data := &biblio.SearchData{
		// Supplementary certificates only exist for granted patents.
		ObjState:            biblio.ObjStateRegistered,
		ProtectiveDocNumber: certificate.I11,
	}
	if app != nil {
		data.AppNumber = app.AppNumber
	}
	for _, owner := range certificate.I73 {
		if owner.NU != "" {
			data.Owner = append(data.Owner, &biblio.SearchName{Name: owner.NU})
		}
	}
	if certificate.I95 != "" {
		data.Title = certificate.I95
	}
	return data
}
