// Package validate rejects records that reference bulletins not yet
// issued. Exports are prepared ahead of publication day; indexing them
// early would leak unpublished data.
package validate

import (
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/ukripo/sisindex/internal/biblio"
	"github.com/ukripo/sisindex/internal/clock"
	"github.com/ukripo/sisindex/internal/objtype"
)

type Params struct {
	fx.In

	Clock clock.Clock
}

// Service checks records for future publication dates.
type Service struct {
	clock clock.Clock
}

func New(p Params) *Service {
	return &Service{clock: p.Clock}
}

// Validate returns an error when the record carries a publication or
// bulletin date after today. Dates up to and including today pass.
func (s *Service) Validate(record *biblio.Record) error {
	if record == nil {
		return nil
	}
	today := s.clock.Now().Truncate(24 * time.Hour)

	switch record.ObjType() {
	case objtype.TradeMark:
		return validateTrademark(record.TradeMark, today)
	case objtype.IndustrialDesign:
		return validateDesign(record.Design, today)
	case objtype.Invention, objtype.UtilityModel, objtype.Topography:
		return validatePatentFamily(record, today)
	}
	return nil
}

func validateTrademark(tm *biblio.TradeMark, today time.Time) error {
	if tm == nil {
		return nil
	}
	if tm.TrademarkDetails != nil {
		for _, pub := range tm.TrademarkDetails.PublicationDetails {
			if err := checkNotFuture(pub.PublicationDate, today); err != nil {
				return err
			}
		}
	}
	return validateTransactions(tm.Transactions, today)
}

func validateDesign(design *biblio.Design, today time.Time) error {
	if design == nil {
		return nil
	}
	if design.DesignDetails != nil {
		for _, pub := range design.DesignDetails.RecordPublicationDetails {
			if err := checkNotFuture(pub.PublicationDate, today); err != nil {
				return err
			}
		}
	}
	return validateTransactions(design.Transactions, today)
}

func validatePatentFamily(record *biblio.Record, today time.Time) error {
	if record.Claim != nil {
		for _, date := range record.Claim.I43D {
			if err := checkNotFuture(date, today); err != nil {
				return err
			}
		}
	}
	if record.Patent != nil {
		for _, date := range record.Patent.I45D {
			if err := checkNotFuture(date, today); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateTransactions(transactions *biblio.Transactions, today time.Time) error {
	if transactions == nil {
		return nil
	}
	for _, tx := range transactions.Transaction {
		if err := checkNotFuture(tx.BulletinDate, today); err != nil {
			return err
		}
	}
	return nil
}

// checkNotFuture parses an ISO date and fails when it lies after today.
// Unparsable dates pass; the fixers already normalized everything they
// could, and format defects are not this stage's concern.
func checkNotFuture(date string, today time.Time) error {
	if date == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	if parsed.After(today) {
		return fmt.Errorf("publication date %s is in the future", date)
	}
	return nil
}

// Module wires the future-date validator.
var Module = fx.Module("validate",
	fx.Provide(New),
)
