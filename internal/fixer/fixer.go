// Package fixer repairs the known defects of upstream exports before the
// record is filtered, enriched and indexed. Every fix is idempotent; the
// pipeline may run a record through the fixer any number of times.
package fixer

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ukripo/sisindex/internal/biblio"
	"github.com/ukripo/sisindex/internal/cead"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/objtype"
)

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	CEAD   cead.Resolver
}

// Service applies the per-type fix chain to parsed records.
type Service struct {
	cfg  config.Config
	log  *zap.Logger
	cead cead.Resolver
}

func New(p Params) *Service {
	return &Service{
		cfg:  p.Config,
		log:  p.Log.Named("fixer"),
		cead: p.CEAD,
	}
}

// Fix runs the fix chain for the record's object type. Records of
// unknown type pass through untouched.
func (s *Service) Fix(ctx context.Context, record *biblio.Record) {
	if record == nil {
		return
	}
	switch record.ObjType() {
	case objtype.TradeMark:
		s.fixTrademark(ctx, record)
	case objtype.IndustrialDesign:
		s.fixDesign(ctx, record)
	case objtype.Invention, objtype.UtilityModel, objtype.Topography, objtype.SupplementaryCert:
		s.fixPatentFamily(record)
	case objtype.MadridMark, objtype.MadridMarkUA:
		s.fixMadrid(record)
	case objtype.GeographicalOrigin:
		s.fixGeo(ctx, record)
	case objtype.Copyright, objtype.Decision:
		s.fixCopyrightFamily(record)
	}
}

// Module wires the record fixer.
var Module = fx.Module("fixer",
	fx.Provide(New),
)
