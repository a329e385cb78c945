package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// Upsert updates the publication date of the (app_number, unit_id) row
	// or creates it, so repeated runs never duplicate notices.
	Upsert(ctx context.Context, db *gorm.DB, appNumber string, unitID int, publicationDate time.Time) error
	// Find returns the (app_number, unit_id) row, or nil when absent.
	Find(ctx context.Context, db *gorm.DB, appNumber string, unitID int) (*EBulletinData, error)
	// IssueByDate finds the official bulletin issue whose coverage window
	// contains the given publication date.
	IssueByDate(ctx context.Context, db *gorm.DB, date time.Time) (*OfficialBulletin, error)
	// IssueByBulDate finds the issue published exactly on the given date.
	// The patent-family bulletin strings are derived through this lookup.
	IssueByBulDate(ctx context.Context, db *gorm.DB, date time.Time) (*OfficialBulletin, error)
}
