package fixer

import "github.com/ukripo/sisindex/internal/biblio"

// fixMadrid rewrites the WIPO compact dates (YYYYMMDD) of an
// international registration into ISO form.
func (s *Service) fixMadrid(record *biblio.Record) {
	if record.MadridTradeMark == nil {
		return
	}
	for _, date := range record.MadridTradeMark.TradeMarkDetails.CompactDates() {
		*date = normalizeCompactDate(*date)
	}
}
