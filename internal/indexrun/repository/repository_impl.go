package repository

import (
	"context"

	"github.com/ukripo/sisindex/internal/indexrun/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Begin(ctx context.Context, db *gorm.DB, run *domain.IndexationRun) error {
	return db.WithContext(ctx).Create(run).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, run *domain.IndexationRun) error {
	return db.WithContext(ctx).Save(run).Error
}
