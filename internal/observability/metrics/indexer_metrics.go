package metrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Config carries the constant labels attached to every indexer metric.
type Config struct {
	ServiceName string
	Environment string
}

const (
	IndexerErrorTypeDeadlineExceeded = "deadline_exceeded"
	IndexerErrorTypeNotFound         = "not_found"
	IndexerErrorTypeValidation       = "validation"
	IndexerErrorTypeDB               = "db"
	IndexerErrorTypeSearch           = "search"
	IndexerErrorTypeUnknown          = "unknown"
)

const (
	StageReceive    = "receive"
	StageFix        = "fix"
	StageFilter     = "filter"
	StageSearchData = "search_data"
	StageValidate   = "validate"
	StageWrite      = "write"
)

// IndexerMetrics captures indexation pipeline health signals.
type IndexerMetrics struct {
	runs         *prometheus.CounterVec
	appsIndexed  *prometheus.CounterVec
	appDuration  *prometheus.HistogramVec
	runDuration  prometheus.Observer
	stageErrors  *prometheus.CounterVec
	queueDepth   prometheus.Gauge
	runLoopLag   prometheus.Observer
	stageErrCnts map[string]map[string]prometheus.Counter
}

var (
	indexerMetricsOnce sync.Once
	indexerMetrics     *IndexerMetrics
)

// Indexer returns the singleton indexer metrics registry.
func Indexer() *IndexerMetrics {
	return IndexerWithConfig(Config{})
}

// IndexerWithConfig returns the singleton indexer metrics registry using config labels.
func IndexerWithConfig(cfg Config) *IndexerMetrics {
	indexerMetricsOnce.Do(func() {
		indexerMetrics = newIndexerMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return indexerMetrics
}

// ResetIndexerMetricsForTest resets the indexer metrics singleton for tests.
func ResetIndexerMetricsForTest() {
	indexerMetricsOnce = sync.Once{}
	indexerMetrics = nil
}

func newIndexerMetrics(registerer prometheus.Registerer, cfg Config) *IndexerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "sisindex"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "sisindex_runs_total",
		Help:        "Indexation runs by trigger.",
		ConstLabels: constLabels,
	}, []string{"trigger"})
	appsIndexed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "sisindex_applications_total",
		Help:        "Applications processed per run by object type and outcome.",
		ConstLabels: constLabels,
	}, []string{"obj_type", "outcome"})
	appDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "sisindex_application_duration_seconds",
		Help:        "Per-application indexation latency.",
		Buckets:     []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		ConstLabels: constLabels,
	}, []string{"obj_type"})
	runDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "sisindex_run_duration_seconds",
		Help:        "Full indexation run latency.",
		Buckets:     []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600, 1800, 3600},
		ConstLabels: constLabels,
	})
	stageErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "sisindex_stage_errors_total",
		Help:        "Pipeline stage errors by low-cardinality type.",
		ConstLabels: constLabels,
	}, []string{"stage", "error_type"})
	queueDepth := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "sisindex_pending_applications",
		Help:        "Applications awaiting indexation at the start of a run.",
		ConstLabels: constLabels,
	})
	runLoopLag := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "sisindex_runloop_lag_seconds",
		Help:        "Run loop lag beyond the configured interval.",
		Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		ConstLabels: constLabels,
	})

	registerer.MustRegister(
		runs,
		appsIndexed,
		appDuration,
		runDuration,
		stageErrors,
		queueDepth,
		runLoopLag,
	)

	stageErrCnts := map[string]map[string]prometheus.Counter{}
	errorTypes := []string{
		IndexerErrorTypeDeadlineExceeded,
		IndexerErrorTypeNotFound,
		IndexerErrorTypeValidation,
		IndexerErrorTypeDB,
		IndexerErrorTypeSearch,
	}
	for _, stage := range []string{
		StageReceive,
		StageFix,
		StageFilter,
		StageSearchData,
		StageValidate,
		StageWrite,
	} {
		stageCounters := map[string]prometheus.Counter{}
		for _, errType := range errorTypes {
			stageCounters[errType] = stageErrors.WithLabelValues(stage, errType)
		}
		stageErrCnts[stage] = stageCounters
	}

	return &IndexerMetrics{
		runs:         runs,
		appsIndexed:  appsIndexed,
		appDuration:  appDuration,
		runDuration:  runDuration,
		stageErrors:  stageErrors,
		queueDepth:   queueDepth,
		runLoopLag:   runLoopLag,
		stageErrCnts: stageErrCnts,
	}
}

// IncRun increments the run counter for a trigger ("interval", "manual").
func (m *IndexerMetrics) IncRun(trigger string) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues(trigger).Inc()
}

// IncApplication records a processed application outcome ("indexed", "skipped", "failed").
func (m *IndexerMetrics) IncApplication(objType, outcome string) {
	if m == nil || m.appsIndexed == nil {
		return
	}
	m.appsIndexed.WithLabelValues(objType, outcome).Inc()
}

// ObserveApplicationDuration records per-application indexation latency.
func (m *IndexerMetrics) ObserveApplicationDuration(objType string, duration time.Duration) {
	if m == nil || m.appDuration == nil {
		return
	}
	m.appDuration.WithLabelValues(objType).Observe(duration.Seconds())
}

// ObserveRunDuration records full run latency.
func (m *IndexerMetrics) ObserveRunDuration(duration time.Duration) {
	if m == nil || m.runDuration == nil {
		return
	}
	m.runDuration.Observe(duration.Seconds())
}

// IncStageError increments the stage error counter with classification.
func (m *IndexerMetrics) IncStageError(stage string, err error) {
	if m == nil || err == nil || m.stageErrors == nil {
		return
	}
	errorType := ClassifyIndexerError(err)
	if stageCounters, ok := m.stageErrCnts[stage]; ok {
		if counter, ok := stageCounters[errorType]; ok {
			counter.Inc()
			return
		}
	}
	m.stageErrors.WithLabelValues(stage, errorType).Inc()
}

// SetPending records how many applications the run selected for indexation.
func (m *IndexerMetrics) SetPending(count int) {
	if m == nil || m.queueDepth == nil {
		return
	}
	m.queueDepth.Set(float64(count))
}

// ObserveRunLoopLag records lag between the scheduled tick and actual run start.
func (m *IndexerMetrics) ObserveRunLoopLag(duration time.Duration) {
	if m == nil || m.runLoopLag == nil {
		return
	}
	lag := duration
	if lag < 0 {
		lag = 0
	}
	m.runLoopLag.Observe(lag.Seconds())
}

// ClassifyIndexerError maps an error to a low-cardinality type label.
func ClassifyIndexerError(err error) string {
	switch {
	case err == nil:
		return IndexerErrorTypeUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return IndexerErrorTypeDeadlineExceeded
	case errors.Is(err, gorm.ErrRecordNotFound):
		return IndexerErrorTypeNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return IndexerErrorTypeDB
	default:
		return IndexerErrorTypeUnknown
	}
}
