// Package receiver loads raw application exports from the document share
// and parses them into typed records, supplementing fields that are
// missing at the source.
package receiver

import (
	"context"
	"time"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/biblio"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
	"github.com/ukripo/sisindex/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Config    config.Config
	Limited   limdomain.Repository
	Bulletins buldomain.Repository
}

// Service reads and parses one application export per call.
type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	cfg       config.Config
	limited   limdomain.Repository
	bulletins buldomain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("receiver"),
		cfg:       p.Config,
		limited:   p.Limited,
		bulletins: p.Bulletins,
	}
}

// Receive loads the export for app, parses it and supplements the fields
// the source omits (is_limited, Code_441, bulletin strings).
func (s *Service) Receive(ctx context.Context, app *appdomain.Application) (*biblio.Record, error) {
	path := resolveFilePath(s.cfg, app)
	raw, err := readRecordFile(path)
	if err != nil {
		return nil, err
	}

	record, err := biblio.Parse(raw)
	if err != nil {
		return nil, err
	}

	if record.Document == nil {
		record.Document = &biblio.Document{IDObjType: app.ObjTypeID}
	}

	if err := s.setLimited(ctx, app, record); err != nil {
		return nil, err
	}

	switch {
	case app.ObjTypeID.PatentFamily():
		if err := s.setBulletinStrings(ctx, record); err != nil {
			return nil, err
		}
	default:
		if err := s.setCode441(ctx, app, record); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// setLimited tags the record when an active publication restriction
// exists for the application.
func (s *Service) setLimited(ctx context.Context, app *appdomain.Application, record *biblio.Record) error {
	limited, err := s.limited.Active(ctx, s.db, app.AppNumber, app.ObjTypeID)
	if err != nil {
		return err
	}
	record.Document.IsLimited = limited != nil
	return nil
}

// setCode441 backfills the application publication date from the
// e-bulletin when the export lacks it. A value from the file wins.
func (s *Service) setCode441(ctx context.Context, app *appdomain.Application, record *biblio.Record) error {
	switch {
	case record.TradeMark != nil && record.TradeMark.TrademarkDetails != nil:
		details := record.TradeMark.TrademarkDetails
		if details.Code441 != "" {
			return nil
		}
		row, err := s.bulletins.Find(ctx, s.db, app.AppNumber, buldomain.UnitTrademark)
		if err != nil {
			return err
		}
		if row != nil && row.PublicationDate != nil {
			details.Code441 = row.PublicationDate.Format("2006-01-02")
		}
	case record.MadridTradeMark != nil && record.MadridTradeMark.TradeMarkDetails != nil:
		details := record.MadridTradeMark.TradeMarkDetails
		if details.Code441 != "" {
			return nil
		}
		row, err := s.bulletins.Find(ctx, s.db, app.RegistrationNumber, buldomain.UnitMadrid)
		if err != nil {
			return err
		}
		if row != nil && row.PublicationDate != nil {
			details.Code441 = row.PublicationDate.Format("2006-01-02")
		}
	}
	return nil
}

// setBulletinStrings derives the "issue/year" bulletin identifiers for
// patent-family records from the official bulletin list.
func (s *Service) setBulletinStrings(ctx context.Context, record *biblio.Record) error {
	for _, b := range []*biblio.PatentBiblio{record.Claim, record.Patent} {
		if b == nil {
			continue
		}
		if b.I43BulStr == "" && len(b.I43D) > 0 {
			label, err := s.issueLabel(ctx, b.I43D[0])
			if err != nil {
				return err
			}
			b.I43BulStr = label
		}
		if b.I45BulStr == "" && len(b.I45D) > 0 {
			label, err := s.issueLabel(ctx, b.I45D[len(b.I45D)-1])
			if err != nil {
				return err
			}
			b.I45BulStr = label
		}
	}
	return nil
}

func (s *Service) issueLabel(ctx context.Context, date string) (string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", nil
	}
	issue, err := s.bulletins.IssueByBulDate(ctx, s.db, parsed)
	if err != nil {
		return "", err
	}
	if issue == nil {
		// No issue published exactly on that date; fall back to the
		// issue whose coverage window contains it.
		issue, err = s.bulletins.IssueByDate(ctx, s.db, parsed)
		if err != nil {
			return "", err
		}
	}
	if issue == nil {
		return "", nil
	}
	return issue.IssueLabel(), nil
}

// Module wires the raw-record receiver.
var Module = fx.Module("receiver",
	fx.Provide(New),
)
