// Package writer publishes prepared records to the search index and
// records the result on the registry row. An index failure leaves the
// row untouched so the next run retries the application.
package writer

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
	"github.com/ukripo/sisindex/internal/clock"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/objtype"
	"github.com/ukripo/sisindex/internal/search"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Config    config.Config
	Clock     clock.Clock
	Indexer   search.Indexer
	Apps      appdomain.Repository
	Bulletins buldomain.Repository
}

// Service writes records to the search index and the registry.
type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	cfg       config.Config
	clock     clock.Clock
	indexer   search.Indexer
	apps      appdomain.Repository
	bulletins buldomain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("writer"),
		cfg:       p.Config,
		clock:     p.Clock,
		indexer:   p.Indexer,
		apps:      p.Apps,
		bulletins: p.Bulletins,
	}
}

// Write runs the per-type side effects, indexes the record under the
// application id and marks the row indexed. The side effects are
// best-effort; only an index failure aborts the write.
func (s *Service) Write(ctx context.Context, app *appdomain.Application, record *biblio.Record, allow limdomain.AllowList) error {
	switch record.ObjType() {
	case objtype.TradeMark:
		s.prepareTrademark(ctx, app, record)
	case objtype.IndustrialDesign:
		s.prepareDesign(app, record)
	case objtype.Invention, objtype.UtilityModel, objtype.Topography:
		s.preparePatentFamily(ctx, app, record, allow)
	case objtype.MadridMark:
		s.prepareMadrid(ctx, app, record)
	case objtype.GeographicalOrigin:
		s.prepareGeo(ctx, app, record)
	}

	document, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := s.indexer.Index(ctx, app.ID, document); err != nil {
		return err
	}

	now := s.clock.Now()
	app.OpenDataUpdated = 0
	if record.Document != nil && record.Document.IsLimited {
		app.IsLimited = 1
	} else {
		app.IsLimited = 0
	}
	return s.apps.MarkIndexed(ctx, s.db, app, now)
}

// upsertBulletin stores a publication date under the given unit, parsing
// the ISO date the fixers left behind.
func (s *Service) upsertBulletin(ctx context.Context, appNumber string, unitID int, date string) {
	if appNumber == "" || date == "" {
		return
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		s.log.Warn("unparsable publication date",
			zap.String("app_number", appNumber), zap.String("date", date))
		return
	}
	if err := s.bulletins.Upsert(ctx, s.db, appNumber, unitID, parsed); err != nil {
		s.log.Warn("bulletin upsert failed",
			zap.String("app_number", appNumber), zap.Int("unit_id", unitID), zap.Error(err))
	}
}

// Module wires the index writer.
var Module = fx.Module("writer",
	fx.Provide(New),
)
