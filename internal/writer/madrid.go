package writer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
)

func (s *Service) prepareMadrid(ctx context.Context, app *appdomain.Application, record *biblio.Record) {
	if record.MadridTradeMark == nil || record.MadridTradeMark.TradeMarkDetails == nil {
		return
	}
	details := record.MadridTradeMark.TradeMarkDetails

	s.upsertBulletin(ctx, app.RegistrationNumber, buldomain.UnitMadrid, details.Code441)

	if details.Code441 != "" {
		s.propagateCode441(ctx, app.RegistrationNumber, details.Code441)
	}
}

// propagateCode441 copies the publication code into the already-indexed
// "distributed to Ukraine" twin of the international registration, which
// is exported without it.
func (s *Service) propagateCode441(ctx context.Context, registrationNumber, code441 string) {
	id, source, err := s.indexer.FindMadridSibling(ctx, registrationNumber)
	if err != nil {
		s.log.Warn("madrid sibling lookup failed",
			zap.String("registration_number", registrationNumber), zap.Error(err))
		return
	}
	if id == 0 {
		return
	}

	sibling, err := biblio.Parse(source)
	if err != nil {
		s.log.Warn("madrid sibling unreadable",
			zap.Int64("id", id), zap.Error(err))
		return
	}
	if sibling.MadridTradeMark == nil || sibling.MadridTradeMark.TradeMarkDetails == nil {
		return
	}
	if sibling.MadridTradeMark.TradeMarkDetails.Code441 == code441 {
		return
	}
	sibling.MadridTradeMark.TradeMarkDetails.Code441 = code441

	document, err := json.Marshal(sibling)
	if err != nil {
		s.log.Warn("madrid sibling marshal failed",
			zap.Int64("id", id), zap.Error(err))
		return
	}
	if err := s.indexer.Index(ctx, id, document); err != nil {
		s.log.Warn("madrid sibling update failed",
			zap.Int64("id", id), zap.Error(err))
	}
}
