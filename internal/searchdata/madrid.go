package searchdata

import (
	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

func madridSearchData(app *appdomain.Application, mark *biblio.MadridTradeMark) *biblio.SearchData {
	if mark == nil || mark.TradeMarkDetails == nil {
		return nil
	}
	details := mark.TradeMarkDetails

	// International registrations only reach the registry once granted;
	// the international registration number doubles as the application
	// number.
	data := &biblio.SearchData{
		ObjState:   biblio.ObjStateRegistered,
		RightsDate: details.IntRegD,
	}
	if app != nil {
		data.AppNumber = app.RegistrationNumber
		data.ProtectiveDocNumber = app.RegistrationNumber
	}
	if details.HolGr != nil && details.HolGr.Name != nil && details.HolGr.Name.NameL != "" {
		data.Owner = []*biblio.SearchName{{Name: details.HolGr.Name.NameL}}
	}
	if details.RepGr != nil && details.RepGr.Name != nil && details.RepGr.Name.NameL != "" {
		data.Agent = []*biblio.SearchName{{Name: details.RepGr.Name.NameL}}
	}
	if details.Image != nil && details.Image.Text != "" {
		data.Title = details.Image.Text
	}
	return data
}
