package fixer

import (
	"context"

	"github.com/ukripo/sisindex/internal/biblio"
)

func (s *Service) fixGeo(ctx context.Context, record *biblio.Record) {
	s.fixFilesPath(record)
	rehomeGeoSections(record)

	geo := record.Geo
	if geo == nil || geo.GeoDetails == nil {
		return
	}
	details := geo.GeoDetails

	details.RegistrationDate = normalizeDate(details.RegistrationDate)
	if details.ApplicationPublicationDetails != nil {
		details.ApplicationPublicationDetails.PublicationDate =
			normalizeDate(details.ApplicationPublicationDetails.PublicationDate)
	}
	fixStages(details.Stages, details.RegistrationNumber != "")
	fixTransactions(geo.Transactions, details.RegistrationNumber)
	s.fixDocFlowCEAD(ctx, geo.DocFlow)
}

func rehomeGeoSections(record *biblio.Record) {
	if record.Geo == nil {
		return
	}
	if record.StrayPaymentDetails != nil {
		record.Geo.PaymentDetails = record.StrayPaymentDetails
		record.StrayPaymentDetails = nil
	}
	if record.StrayDocFlow != nil {
		record.Geo.DocFlow = record.StrayDocFlow
		record.StrayDocFlow = nil
	}
	if record.StrayTransactions != nil {
		record.Geo.Transactions = record.StrayTransactions
		record.StrayTransactions = nil
	}
}
