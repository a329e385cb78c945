package main

import (
	"context"
	"flag"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ukripo/sisindex/internal/application"
	"github.com/ukripo/sisindex/internal/applimited"
	"github.com/ukripo/sisindex/internal/bulletin"
	"github.com/ukripo/sisindex/internal/cead"
	"github.com/ukripo/sisindex/internal/clock"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/fixer"
	"github.com/ukripo/sisindex/internal/indexer"
	"github.com/ukripo/sisindex/internal/indexrun"
	"github.com/ukripo/sisindex/internal/limited"
	"github.com/ukripo/sisindex/internal/logger"
	"github.com/ukripo/sisindex/internal/metricspush"
	"github.com/ukripo/sisindex/internal/migration"
	"github.com/ukripo/sisindex/internal/objtype"
	"github.com/ukripo/sisindex/internal/observability"
	"github.com/ukripo/sisindex/internal/receiver"
	"github.com/ukripo/sisindex/internal/search"
	"github.com/ukripo/sisindex/internal/searchdata"
	"github.com/ukripo/sisindex/internal/stages"
	"github.com/ukripo/sisindex/internal/validate"
	"github.com/ukripo/sisindex/internal/writer"
	"github.com/ukripo/sisindex/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	appID := flag.Int64("app-id", 0, "index a single application by id")
	objTypes := flag.String("obj-types", "", "comma-separated object type ids to index")
	status := flag.Int("status", 0, "1 indexes applications only, 2 registered only")
	ignoreIndexed := flag.Bool("ignore-indexed", false, "reindex rows whose search document is already fresh")
	once := flag.Bool("once", false, "run a single pass and exit")
	flag.Parse()

	opts := indexer.Options{
		AppID:         *appID,
		ObjTypes:      parseObjTypes(*objTypes),
		Status:        *status,
		IgnoreIndexed: *ignoreIndexed,
	}
	runOnce := *once || opts.AppID != 0

	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		metricspush.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Registry domains
		application.Module,
		applimited.Module,
		bulletin.Module,
		indexrun.Module,

		// External systems
		cead.Module,
		search.Module,

		// Indexation pipeline
		receiver.Module,
		fixer.Module,
		limited.Module,
		searchdata.Module,
		stages.Module,
		validate.Module,
		writer.Module,
		indexer.Module,

		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner, log *zap.Logger, s *indexer.Service) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					if runOnce {
						go func() {
							if _, err := s.Run(context.Background(), opts); err != nil {
								log.Error("indexation run failed", zap.Error(err))
							}
							_ = shutdowner.Shutdown()
						}()
						return nil
					}
					go s.RunForever(context.Background())
					return nil
				},
			})
		}),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func parseObjTypes(raw string) []objtype.ID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []objtype.ID
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, objtype.ID(id))
	}
	return out
}
