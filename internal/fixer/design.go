package fixer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukripo/sisindex/internal/biblio"
)

func (s *Service) fixDesign(ctx context.Context, record *biblio.Record) {
	s.fixFilesPath(record)
	rehomeDesignSections(record)

	design := record.Design
	if design == nil || design.DesignDetails == nil {
		return
	}
	details := design.DesignDetails

	fixIndicationClasses(details.IndicationProductDetails)
	fixPublicationIdentifiers(details.RecordPublicationDetails)
	fixStages(details.Stages, details.RegistrationNumber != "")
	dropEmptyPriorities(details)
	fixTransactions(design.Transactions, details.RegistrationNumber)
	s.fixDocFlowCEAD(ctx, design.DocFlow)
}

func rehomeDesignSections(record *biblio.Record) {
	if record.Design == nil {
		return
	}
	if record.StrayPaymentDetails != nil {
		record.Design.PaymentDetails = record.StrayPaymentDetails
		record.StrayPaymentDetails = nil
	}
	if record.StrayDocFlow != nil {
		record.Design.DocFlow = record.StrayDocFlow
		record.StrayDocFlow = nil
	}
	if record.StrayTransactions != nil {
		record.Design.Transactions = record.StrayTransactions
		record.StrayTransactions = nil
	}
}

// fixIndicationClasses rewrites Locarno classes from the dotted export
// form to the canonical dashed one: "06.01" becomes "06-01", "6.1"
// becomes "6-01".
func fixIndicationClasses(products []*biblio.IndicationProduct) {
	for _, product := range products {
		if !strings.Contains(product.Class, ".") {
			continue
		}
		parts := strings.SplitN(product.Class, ".", 2)
		if sub, err := strconv.Atoi(parts[1]); err == nil {
			product.Class = fmt.Sprintf("%s-%02d", parts[0], sub)
		} else {
			product.Class = parts[0] + "-" + parts[1]
		}
	}
}

// dropEmptyPriorities removes priority entries whose date is empty; the
// export writes placeholder objects when no priority was claimed.
func dropEmptyPriorities(details *biblio.DesignDetails) {
	if details.PriorityDetails == nil {
		return
	}
	kept := details.PriorityDetails.Priority[:0]
	for _, priority := range details.PriorityDetails.Priority {
		if priority.PriorityDate != "" {
			kept = append(kept, priority)
		}
	}
	if len(kept) == 0 {
		details.PriorityDetails = nil
		return
	}
	details.PriorityDetails.Priority = kept
}

