// Package indexer drives the indexation pipeline: it selects stale
// applications, pushes each one through receive, fix, filter, search
// data, stages, validation and write, and keeps the audit trail of
// every pass.
package indexer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/clock"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/fixer"
	rundomain "github.com/ukripo/sisindex/internal/indexrun/domain"
	"github.com/ukripo/sisindex/internal/limited"
	"github.com/ukripo/sisindex/internal/metricspush"
	obsmetrics "github.com/ukripo/sisindex/internal/observability/metrics"
	"github.com/ukripo/sisindex/internal/objtype"
	"github.com/ukripo/sisindex/internal/receiver"
	"github.com/ukripo/sisindex/internal/searchdata"
	"github.com/ukripo/sisindex/internal/stages"
	"github.com/ukripo/sisindex/internal/validate"
	"github.com/ukripo/sisindex/internal/writer"
)

const (
	TriggerInterval = "interval"
	TriggerManual   = "manual"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Settings *config.IndexationSettingsHolder
	Clock    clock.Clock
	GenID    *snowflake.Node

	Apps   appdomain.Repository
	Runs   rundomain.Repository
	Pusher metricspush.Pusher

	Receiver   *receiver.Service
	Fixer      *fixer.Service
	Limited    *limited.Service
	SearchData *searchdata.Service
	Stages     *stages.Service
	Validator  *validate.Service
	Writer     *writer.Service
}

// Service runs indexation passes over the application registry.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	settings *config.IndexationSettingsHolder
	clock    clock.Clock
	genID    *snowflake.Node

	apps   appdomain.Repository
	runs   rundomain.Repository
	pusher metricspush.Pusher

	receiver   *receiver.Service
	fixer      *fixer.Service
	limited    *limited.Service
	searchData *searchdata.Service
	stages     *stages.Service
	validator  *validate.Service
	writer     *writer.Service
}

func New(p Params) *Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("indexer"),
		settings:   p.Settings,
		clock:      p.Clock,
		genID:      p.GenID,
		apps:       p.Apps,
		runs:       p.Runs,
		pusher:     p.Pusher,
		receiver:   p.Receiver,
		fixer:      p.Fixer,
		limited:    p.Limited,
		searchData: p.SearchData,
		stages:     p.Stages,
		validator:  p.Validator,
		writer:     p.Writer,
	}
}

// Options narrows one indexation pass. The zero value indexes every
// stale application.
type Options struct {
	// AppID restricts the pass to a single application, indexed even
	// when its freshness flag is already set.
	AppID int64
	// ObjTypes restricts the pass to the given object types.
	ObjTypes []objtype.ID
	// Status filters by document state: 1 applications only, 2
	// registered only.
	Status int
	// IgnoreIndexed disregards the freshness flag and reindexes rows
	// whose search document is already fresh.
	IgnoreIndexed bool
	// Trigger labels the pass for the metrics ("interval", "manual").
	Trigger string
}

// Run executes one indexation pass and returns its audit row. Failures
// of individual applications are counted and logged, never fatal; only
// a failure to select candidates or to open the audit row aborts.
func (s *Service) Run(ctx context.Context, opts Options) (*rundomain.IndexationRun, error) {
	start := s.clock.Now()
	metrics := obsmetrics.Indexer()
	trigger := opts.Trigger
	if trigger == "" {
		trigger = TriggerManual
	}
	metrics.IncRun(trigger)

	settings := s.settings.Current()
	candidates, err := s.selectCandidates(ctx, opts, settings, start)
	if err != nil {
		return nil, err
	}
	if settings.BatchSize > 0 && len(candidates) > settings.BatchSize {
		candidates = candidates[:settings.BatchSize]
	}
	metrics.SetPending(len(candidates))

	begin := start
	run := &rundomain.IndexationRun{
		ID:        s.genID.Generate(),
		BeginDate: &begin,
	}
	if err := s.runs.Begin(ctx, s.db, run); err != nil {
		return nil, err
	}

	log := s.log.With(zap.String("run_id", run.ID.String()))
	log.Info("indexation run started",
		zap.String("trigger", trigger), zap.Int("candidates", len(candidates)))

	for _, app := range candidates {
		if err := ctx.Err(); err != nil {
			log.Warn("indexation run interrupted", zap.Error(err))
			break
		}
		run.Processed++

		appStart := s.clock.Now()
		err := s.indexOne(ctx, app)
		metrics.ObserveApplicationDuration(app.ObjTypeID.String(), s.clock.Now().Sub(appStart))

		switch {
		case err == nil:
			run.OK++
			metrics.IncApplication(app.ObjTypeID.String(), "indexed")
		case os.IsNotExist(err):
			run.Skipped++
			metrics.IncApplication(app.ObjTypeID.String(), "skipped")
			log.Warn("export file missing",
				zap.Int64("app_id", app.ID), zap.String("app_number", app.AppNumber))
		default:
			run.Errors++
			metrics.IncApplication(app.ObjTypeID.String(), "failed")
			log.Error("indexation failed",
				zap.Int64("app_id", app.ID),
				zap.String("app_number", app.AppNumber),
				zap.Stringer("obj_type", app.ObjTypeID),
				zap.Error(err))
		}

		if err := s.runs.Update(ctx, s.db, run); err != nil {
			log.Warn("indexation run audit update failed", zap.Error(err))
		}
	}

	finish := s.clock.Now()
	run.FinishDate = &finish
	if err := s.runs.Update(ctx, s.db, run); err != nil {
		log.Warn("indexation run audit update failed", zap.Error(err))
	}
	metrics.ObserveRunDuration(finish.Sub(start))

	if err := s.pusher.Push(ctx); err != nil {
		log.Warn("metrics push failed", zap.Error(err))
	}

	log.Info("indexation run finished",
		zap.Int("processed", run.Processed),
		zap.Int("ok", run.OK),
		zap.Int("skipped", run.Skipped),
		zap.Int("errors", run.Errors))
	return run, nil
}

// selectCandidates picks the applications for one pass. A targeted run
// loads its single row directly, bypassing the batch filters; a batch
// run selects stale rows through the operator-editable settings.
func (s *Service) selectCandidates(ctx context.Context, opts Options, settings config.IndexationSettings, now time.Time) ([]*appdomain.Application, error) {
	if opts.AppID != 0 {
		app, err := s.apps.FindByID(ctx, s.db, opts.AppID)
		if err != nil {
			return nil, err
		}
		return []*appdomain.Application{app}, nil
	}
	return s.apps.Candidates(ctx, s.db, appdomain.CandidateFilter{
		IgnoreIndexed:    opts.IgnoreIndexed,
		Status:           opts.Status,
		ObjTypes:         opts.ObjTypes,
		IgnoreAppNumbers: settings.IgnoreAppNumbers,
		Now:              now,
	})
}

// indexOne isolates a panic in any pipeline stage to the one
// application, so a malformed export never takes down the batch.
func (s *Service) indexOne(ctx context.Context, app *appdomain.Application) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("indexation panic: %v", r)
		}
	}()
	return s.IndexApplication(ctx, app)
}

// IndexApplication pushes a single application through the pipeline.
func (s *Service) IndexApplication(ctx context.Context, app *appdomain.Application) error {
	metrics := obsmetrics.Indexer()

	record, err := s.receiver.Receive(ctx, app)
	if err != nil {
		metrics.IncStageError(obsmetrics.StageReceive, err)
		return err
	}

	s.fixer.Fix(ctx, record)

	allow, err := s.limited.Apply(ctx, record, app.AppNumber)
	if err != nil {
		metrics.IncStageError(obsmetrics.StageFilter, err)
		return err
	}

	s.searchData.Create(app, record)

	s.stages.SortTransactions(record)
	s.stages.Derive(record)

	if err := s.validator.Validate(record); err != nil {
		metrics.IncStageError(obsmetrics.StageValidate, err)
		return err
	}

	if err := s.writer.Write(ctx, app, record, allow); err != nil {
		metrics.IncStageError(obsmetrics.StageWrite, err)
		return err
	}
	return nil
}

// RunForever runs interval passes until the context is cancelled. The
// interval is re-read from the hot-reloaded settings after every pass.
func (s *Service) RunForever(ctx context.Context) {
	for {
		interval := s.settings.Current().Interval
		scheduled := s.clock.Now().Add(interval)

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		obsmetrics.Indexer().ObserveRunLoopLag(s.clock.Now().Sub(scheduled))

		if _, err := s.Run(ctx, Options{Trigger: TriggerInterval}); err != nil {
			s.log.Error("indexation run failed", zap.Error(err))
		}
	}
}

// Module wires the indexation orchestrator.
var Module = fx.Module("indexer",
	fx.Provide(New),
)
