package writer

import (
	"context"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
)

func (s *Service) prepareGeo(ctx context.Context, app *appdomain.Application, record *biblio.Record) {
	if record.Geo == nil || record.Geo.GeoDetails == nil {
		return
	}
	publication := record.Geo.GeoDetails.ApplicationPublicationDetails
	if publication == nil {
		return
	}
	s.upsertBulletin(ctx, app.AppNumber, buldomain.UnitGeographic, publication.PublicationDate)
}

func (s *Service) prepareDesign(app *appdomain.Application, record *biblio.Record) {
	if record.Document != nil && record.Document.IsLimited {
		s.deleteImages(app)
	}
}
