package domain

import (
	"context"
	"time"

	"github.com/ukripo/sisindex/internal/objtype"
	"gorm.io/gorm"
)

// CandidateFilter narrows which applications a run picks up.
type CandidateFilter struct {
	// IgnoreIndexed disregards the freshness flag and selects every row.
	// By default only stale rows (elasticindexed = 0) are candidates.
	IgnoreIndexed bool
	// AppID restricts the run to a single application.
	AppID int64
	// Status filters by document state: 1 applications only, 2 registered only.
	Status int
	// ObjTypes filters by object type when non-empty.
	ObjTypes []objtype.ID
	// IgnoreAppNumbers drops specific application numbers from the batch.
	IgnoreAppNumbers []string
	// Now bounds registration_date: rows registered in the future are
	// withheld until their date arrives.
	Now time.Time
}

type Repository interface {
	Candidates(ctx context.Context, db *gorm.DB, filter CandidateFilter) ([]*Application, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Application, error)
	// MarkIndexed records a successful publication: freshness flag set,
	// indexation timestamp and the row fields the writer refreshed.
	MarkIndexed(ctx context.Context, db *gorm.DB, app *Application, indexedAt time.Time) error
	DocumentsByAppID(ctx context.Context, db *gorm.DB, appID int64) ([]*AppDocument, error)
}
