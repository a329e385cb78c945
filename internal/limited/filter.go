// Package limited strips restricted sections from records flagged for
// limited publication before they reach the search index.
package limited

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	"github.com/ukripo/sisindex/internal/objtype"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Limited limdomain.Repository
}

// Service resolves an application's publication restrictions and applies
// them to the parsed record.
type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	limited limdomain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("limited"),
		limited: p.Limited,
	}
}

// Apply filters the record when it is flagged for limited publication and
// returns the resolved allow-list so the writer can apply the same policy
// to published files. Unrestricted records pass through with a nil list.
func (s *Service) Apply(ctx context.Context, record *biblio.Record, appNumber string) (limdomain.AllowList, error) {
	if record == nil || record.Document == nil || !record.Document.IsLimited {
		return nil, nil
	}

	allow := limdomain.AllowList{}
	row, err := s.limited.Active(ctx, s.db, appNumber, record.ObjType())
	if err != nil {
		return nil, err
	}
	if row != nil {
		allow, err = limdomain.ParseAllowList(row.Settings)
		if err != nil {
			s.log.Warn("unreadable limitation settings, falling back to defaults",
				zap.String("app_number", appNumber), zap.Error(err))
			allow = limdomain.AllowList{}
		}
	}

	switch record.ObjType() {
	case objtype.TradeMark:
		filterTrademark(record.TradeMark)
	case objtype.IndustrialDesign:
		filterDesign(record.Design)
	case objtype.Invention, objtype.UtilityModel, objtype.Topography:
		filterPatentFamily(record, allow)
	case objtype.Copyright:
		filterCopyright(record.Certificate, allow)
	case objtype.Decision:
		filterDecision(record.Decision, allow)
	}
	return allow, nil
}

// Trademark restrictions are unconditional: parties, correspondence and
// the mark image details never publish for a limited mark.
func filterTrademark(tm *biblio.TradeMark) {
	if tm == nil || tm.TrademarkDetails == nil {
		return
	}
	details := tm.TrademarkDetails
	details.ApplicantDetails = nil
	details.HolderDetails = nil
	details.CorrespondenceAddress = nil
	if details.MarkImageDetails != nil && details.MarkImageDetails.MarkImage != nil {
		details.MarkImageDetails.MarkImage.MarkImageColourClaimedText = ""
		details.MarkImageDetails.MarkImage.MarkImageFilename = ""
	}
}

// Design restrictions are likewise unconditional.
func filterDesign(design *biblio.Design) {
	if design == nil || design.DesignDetails == nil {
		return
	}
	details := design.DesignDetails
	details.ApplicantDetails = nil
	details.DesignerDetails = nil
	details.HolderDetails = nil
	details.CorrespondenceAddress = nil
	details.DesignSpecimenDetails = nil
}

// Patent-family sections default to hidden and publish only on an
// explicit allow-list entry.
func filterPatentFamily(record *biblio.Record, allow limdomain.AllowList) {
	for _, section := range []*biblio.PatentBiblio{record.Claim, record.Patent} {
		if section == nil {
			continue
		}
		for _, field := range limdomain.PatentFields() {
			if allow.Visible(field, false) {
				continue
			}
			clearPatentField(section, field)
		}
	}
}

func clearPatentField(section *biblio.PatentBiblio, field string) {
	switch field {
	case "AB":
		section.AB = ""
	case "CL":
		section.CL = ""
	case "DE":
		section.DE = ""
	case "I_71":
		section.I71 = nil
	case "I_72":
		section.I72 = nil
	case "I_73":
		section.I73 = nil
	case "I_98":
		section.I98 = ""
	case "I_98_Index":
		section.I98Index = ""
	}
}

func filterCopyright(certificate *biblio.Certificate, allow limdomain.AllowList) {
	if certificate == nil || certificate.CopyrightDetails == nil {
		return
	}
	for field, def := range limdomain.CopyrightFields() {
		if !allow.Visible(field, def) {
			certificate.CopyrightDetails.ClearField(field)
		}
	}
}

func filterDecision(decision *biblio.Decision, allow limdomain.AllowList) {
	if decision == nil || decision.DecisionDetails == nil {
		return
	}
	details := decision.DecisionDetails
	for field, def := range limdomain.DecisionFields() {
		if !allow.Visible(field, def) {
			details.ClearField(field)
			continue
		}
		// License party sections support per-sub-field switches: a nested
		// override keeps the section but may hide name or address lines.
		switch field {
		case "LicenseeDetails":
			if details.LicenseeDetails != nil {
				for _, licensee := range details.LicenseeDetails.Licensee {
					filterPartySubFields(licensee.LicenseeAddressBook, allow, field)
				}
			}
		case "LicensorDetails":
			if details.LicensorDetails != nil {
				for _, licensor := range details.LicensorDetails.Licensor {
					filterPartySubFields(licensor.LicensorAddressBook, allow, field)
				}
			}
		}
	}
}

func filterPartySubFields(book *biblio.AddressBook, allow limdomain.AllowList, field string) {
	if book == nil || book.FormattedNameAddress == nil {
		return
	}
	address := book.FormattedNameAddress
	if !allow.SubVisible(field, "Address", true) {
		address.Address = nil
	}
	if !allow.SubVisible(field, "Name", true) {
		address.Name = nil
	}
}

// Module wires the limited-publication filter.
var Module = fx.Module("limited",
	fx.Provide(New),
)
