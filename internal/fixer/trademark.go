package fixer

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/ukripo/sisindex/internal/biblio"
)

func (s *Service) fixTrademark(ctx context.Context, record *biblio.Record) {
	s.fixFilesPath(record)
	rehomeTrademarkSections(record)

	tm := record.TradeMark
	if tm == nil || tm.TrademarkDetails == nil {
		return
	}
	details := tm.TrademarkDetails

	fixPublicationIdentifiers(details.PublicationDetails)
	fixPartyOriginals(details)
	fixStages(details.Stages, details.RegistrationNumber != "")
	fixAssociatedRegistrations(details)
	details.TerminationDate = normalizeDate(details.TerminationDate)
	fixExhibitionPriority(details)
	fixTransactions(tm.Transactions, details.RegistrationNumber)
	s.fixDocFlowCEAD(ctx, tm.DocFlow)
}

// fixFilesPath rewrites the legacy export prefix and guarantees the
// trailing separator downstream consumers rely on.
func (s *Service) fixFilesPath(record *biblio.Record) {
	if record.Document == nil || record.Document.FilesPath == "" {
		return
	}
	p := record.Document.FilesPath
	if s.cfg.FilesPathLegacyPrefix != "" {
		p = strings.Replace(p, s.cfg.FilesPathLegacyPrefix, s.cfg.FilesPathCanonicalPrefix, 1)
	}
	if !strings.HasSuffix(p, `\`) {
		p += `\`
	}
	record.Document.FilesPath = p
}

// rehomeTrademarkSections moves stray root-level sections under the
// trademark envelope where they belong.
func rehomeTrademarkSections(record *biblio.Record) {
	if record.TradeMark == nil {
		return
	}
	if record.StrayPaymentDetails != nil {
		record.TradeMark.PaymentDetails = record.StrayPaymentDetails
		record.StrayPaymentDetails = nil
	}
	if record.StrayDocFlow != nil {
		record.TradeMark.DocFlow = record.StrayDocFlow
		record.StrayDocFlow = nil
	}
	if record.StrayTransactions != nil {
		record.TradeMark.Transactions = record.StrayTransactions
		record.StrayTransactions = nil
	}
}

// fixPublicationIdentifiers normalizes publication dates and appends the
// year to short bulletin identifiers ("5" becomes "5/2024").
func fixPublicationIdentifiers(publications []*biblio.Publication) {
	for _, pub := range publications {
		pub.PublicationDate = normalizeDate(pub.PublicationDate)
		if pub.PublicationIdentifier != "" && len(pub.PublicationIdentifier) < 6 && len(pub.PublicationDate) >= 4 {
			pub.PublicationIdentifier = pub.PublicationIdentifier + "/" + pub.PublicationDate[:4]
		}
	}
}

func fixPartyOriginals(details *biblio.TrademarkDetails) {
	if details.ApplicantDetails != nil {
		for _, applicant := range details.ApplicantDetails.Applicant {
			if applicant.ApplicantAddressBook != nil {
				applicant.ApplicantAddressBook.FormattedNameAddress.DropEmptyOriginals()
			}
		}
	}
	if details.HolderDetails != nil {
		for _, holder := range details.HolderDetails.Holder {
			if holder.HolderAddressBook != nil {
				holder.HolderAddressBook.FormattedNameAddress.DropEmptyOriginals()
			}
		}
	}
}

// fixStages reverses the stage list into display order and forces every
// stage done once a protective document exists.
func fixStages(stages []*biblio.Stage, registered bool) {
	for i, j := 0, len(stages)-1; i < j; i, j = i+1, j-1 {
		stages[i], stages[j] = stages[j], stages[i]
	}
	if registered {
		for _, stage := range stages {
			stage.Status = biblio.StageDone
		}
	}
}

func fixAssociatedRegistrations(details *biblio.TrademarkDetails) {
	root := details.AssociatedRegistrationApplicationDetails
	if root == nil || root.AssociatedRegistrationApplication == nil ||
		root.AssociatedRegistrationApplication.AssociatedRegistrationDetails == nil {
		return
	}
	for _, app := range root.AssociatedRegistrationApplication.AssociatedRegistrationDetails.DivisionalApplication {
		if app.AssociatedRegistration != nil {
			app.AssociatedRegistration.AssociatedRegistrationDate =
				normalizeDate(app.AssociatedRegistration.AssociatedRegistrationDate)
		}
	}
}

// fixExhibitionPriority wraps the bare-list form of
// ExhibitionPriorityDetails into the normalized object form.
func fixExhibitionPriority(details *biblio.TrademarkDetails) {
	raw := details.ExhibitionPriorityDetails
	if len(raw) == 0 {
		return
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return
	}
	wrapped, err := json.Marshal(map[string]interface{}{"ExhibitionPriority": list})
	if err != nil {
		return
	}
	details.ExhibitionPriorityDetails = wrapped
}

// fixTransactions drops notices belonging to other protective
// documents, re-homes flat publication fields and normalizes dates.
func fixTransactions(transactions *biblio.Transactions, registrationNumber string) {
	if transactions == nil || len(transactions.Transaction) == 0 {
		return
	}

	kept := transactions.Transaction[:0]
	for _, tx := range transactions.Transaction {
		if tx.RegistrationNumber == registrationNumber {
			kept = append(kept, tx)
		}
	}
	transactions.Transaction = kept

	for _, tx := range transactions.Transaction {
		body := tx.TransactionBody
		if body == nil {
			continue
		}
		if body.PublicationDate != "" || body.PublicationNumber != "" {
			body.PublicationDetails = &biblio.TransactionPublication{
				Publication: &biblio.Publication{
					PublicationDate:   body.PublicationDate,
					PublicationNumber: body.PublicationNumber,
				},
			}
			body.PublicationDate = ""
			body.PublicationNumber = ""
		}
		if body.PublicationDetails != nil && body.PublicationDetails.Publication != nil {
			body.PublicationDetails.Publication.PublicationDate =
				normalizeDate(body.PublicationDetails.Publication.PublicationDate)
		}
		body.RegisterDate = normalizeDate(body.RegisterDate)
	}
}

// fixDocFlowCEAD resolves missing archive ids from document barcodes.
func (s *Service) fixDocFlowCEAD(ctx context.Context, flow *biblio.DocFlow) {
	if s.cead == nil || flow == nil {
		return
	}
	for _, doc := range flow.Documents {
		rec := doc.DocRecord
		if rec == nil || rec.DocIDDocCEAD != "" || rec.DocBarCode == "" {
			continue
		}
		id, err := s.cead.DocID(ctx, rec.DocBarCode)
		if err != nil {
			s.log.Warn("cead lookup failed",
				zap.String("barcode", rec.DocBarCode), zap.Error(err))
			continue
		}
		if id != "" {
			rec.DocIDDocCEAD = id
		}
	}
}
