// Package metricspush ships the indexer's prometheus metrics to a
// Pushgateway. A batch process has no scrape endpoint to expose; the
// run loop pushes its counters when a pass finishes instead.
package metricspush

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ukripo/sisindex/internal/config"
)

// Pusher sends the current metrics snapshot to the configured gateway.
// Implementations must not start background goroutines.
type Pusher interface {
	Push(ctx context.Context) error
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

// New builds a pusher from config. An empty push URL disables pushing;
// the indexer then runs with a no-op pusher.
func New(p Params) Pusher {
	endpoint := strings.TrimSpace(p.Config.MetricsPushURL)
	if endpoint == "" {
		return noop{}
	}

	pusher := push.New(endpoint, p.Config.AppName).
		Gatherer(prometheus.DefaultGatherer)
	if env := strings.TrimSpace(p.Config.Environment); env != "" {
		pusher = pusher.Grouping("environment", env)
	}

	return &gatewayPusher{
		pusher:   pusher,
		gatherer: prometheus.DefaultGatherer,
		log:      p.Log.Named("metricspush"),
	}
}

type noop struct{}

func (noop) Push(context.Context) error { return nil }

type gatewayPusher struct {
	pusher   *push.Pusher
	gatherer prometheus.Gatherer
	log      *zap.Logger
}

func (g *gatewayPusher) Push(ctx context.Context) error {
	families, err := g.gatherer.Gather()
	if err != nil {
		return err
	}
	if len(families) == 0 {
		return nil
	}
	g.log.Debug("pushing metrics",
		zap.Int("families", len(families)),
		zap.Int("samples", sampleCount(families)))
	return g.pusher.PushContext(ctx)
}

func sampleCount(families []*dto.MetricFamily) int {
	total := 0
	for _, family := range families {
		total += len(family.GetMetric())
	}
	return total
}

// Module wires the metrics pusher.
var Module = fx.Module("metricspush",
	fx.Provide(New),
)
