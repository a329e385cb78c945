package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"
)

func TestClassifyIndexerError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: IndexerErrorTypeDeadlineExceeded,
		},
		{
			name: "not_found",
			err:  gorm.ErrRecordNotFound,
			want: IndexerErrorTypeNotFound,
		},
		{
			name: "duplicate_key",
			err:  gorm.ErrDuplicatedKey,
			want: IndexerErrorTypeDB,
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: IndexerErrorTypeUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyIndexerError(tc.err); got != tc.want {
				t.Fatalf("expected type %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIncApplication(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newIndexerMetrics(registry, Config{
		ServiceName: "sisindex",
		Environment: "test",
	})

	metrics.IncApplication("trademark", "indexed")
	metrics.IncApplication("trademark", "indexed")
	metrics.IncApplication("trademark", "failed")

	indexed := testutil.ToFloat64(metrics.appsIndexed.WithLabelValues("trademark", "indexed"))
	if indexed != 2 {
		t.Fatalf("expected indexed count 2, got %v", indexed)
	}
	failed := testutil.ToFloat64(metrics.appsIndexed.WithLabelValues("trademark", "failed"))
	if failed != 1 {
		t.Fatalf("expected failed count 1, got %v", failed)
	}
}

func TestIncStageErrorUsesPrebuiltCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newIndexerMetrics(registry, Config{
		ServiceName: "sisindex",
		Environment: "test",
	})

	metrics.IncStageError(StageWrite, gorm.ErrDuplicatedKey)
	metrics.IncStageError(StageWrite, gorm.ErrDuplicatedKey)

	got := testutil.ToFloat64(metrics.stageErrors.WithLabelValues(StageWrite, IndexerErrorTypeDB))
	if got != 2 {
		t.Fatalf("expected stage error count 2, got %v", got)
	}
}

func TestObserveRunLoopLagClampsNegative(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newIndexerMetrics(registry, Config{})

	metrics.ObserveRunLoopLag(-5 * time.Second)
	metrics.ObserveRunLoopLag(2 * time.Second)

	// Both observations land in the histogram without panicking.
	count := testutil.CollectAndCount(metrics.runLoopLag.(prometheus.Histogram))
	if count != 1 {
		t.Fatalf("expected one histogram series, got %d", count)
	}
}
