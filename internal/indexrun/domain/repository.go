package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Begin(ctx context.Context, db *gorm.DB, run *IndexationRun) error
	Update(ctx context.Context, db *gorm.DB, run *IndexationRun) error
}
