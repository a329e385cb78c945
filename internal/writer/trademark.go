package writer

import (
	"context"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
)

// Mark image notices that require censoring the published image.
var censoredImageNotices = map[string]bool{
	"CONTAINS_OBSCENE_WORDS_AND_EXPRESSIONS":           true,
	"CONTAINS_PORNOGRAFIC_IMAGES":                      true,
	"CONTAINS_PROPAGANDA_OF_NATIONAL_ENMITY":           true,
	"CONTAINS_PROPAGANDA_OF_RELIGIOUS_ENMITY":          true,
	"CONTAINS_THE_PROMOTION_OF_FASCISM_AND_NEOFASHISM": true,
}

func (s *Service) prepareTrademark(ctx context.Context, app *appdomain.Application, record *biblio.Record) {
	if record.TradeMark == nil || record.TradeMark.TrademarkDetails == nil {
		return
	}
	details := record.TradeMark.TrademarkDetails

	s.upsertBulletin(ctx, app.AppNumber, buldomain.UnitTrademark, details.Code441)

	if details.MarkImageDetails != nil && details.MarkImageDetails.MarkImage != nil {
		image := details.MarkImageDetails.MarkImage
		if censoredImageNotices[image.MarkImageTypeNotice] {
			s.censorImage(app, image.MarkImageFilename)
		}
	}
}
