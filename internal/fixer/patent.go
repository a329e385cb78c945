package fixer

import "github.com/ukripo/sisindex/internal/biblio"

func (s *Service) fixPatentFamily(record *biblio.Record) {
	s.fixFilesPath(record)

	for _, biblioSection := range []*biblio.PatentBiblio{record.Claim, record.Patent} {
		if biblioSection == nil {
			continue
		}
		for i, d := range biblioSection.I43D {
			biblioSection.I43D[i] = normalizeDate(d)
		}
		for i, d := range biblioSection.I45D {
			biblioSection.I45D[i] = normalizeDate(d)
		}
	}

	fixFlatTransactionDates(record.FlatTransactions)
}

// fixFlatTransactionDates normalizes the bulletin date of the flat
// register notices the patent family exports at the record root.
func fixFlatTransactionDates(transactions []map[string]interface{}) {
	for _, tx := range transactions {
		for _, key := range []string{"BULLETIN_DATE", "@bulletinDate"} {
			if raw, ok := tx[key].(string); ok && raw != "" {
				tx[key] = normalizeDate(raw)
			}
		}
	}
}
