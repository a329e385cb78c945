package observability

import (
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(provideMetricsConfig),
	fx.Invoke(ensureIndexerMetrics),
)

func provideMetricsConfig(cfg config.Config) metrics.Config {
	return metrics.Config{
		ServiceName: cfg.AppName,
		Environment: cfg.Environment,
	}
}

func ensureIndexerMetrics(cfg metrics.Config) {
	metrics.IndexerWithConfig(cfg)
}
