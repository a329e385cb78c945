package domain

import (
	"context"

	"github.com/ukripo/sisindex/internal/objtype"
	"gorm.io/gorm"
)

type Repository interface {
	// Active returns the non-cancelled restriction row for an application,
	// or nil when publication is unrestricted.
	Active(ctx context.Context, db *gorm.DB, appNumber string, objType objtype.ID) (*AppLimited, error)
	// Save persists a restriction row and resets the linked application's
	// freshness flag so the next run republishes it.
	Save(ctx context.Context, db *gorm.DB, limited *AppLimited) error
	// Delete removes a restriction row, also resetting the freshness flag.
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
