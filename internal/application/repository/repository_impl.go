package repository

import (
	"context"
	"time"

	"github.com/ukripo/sisindex/internal/application/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Candidates(ctx context.Context, db *gorm.DB, filter domain.CandidateFilter) ([]*domain.Application, error) {
	var apps []*domain.Application
	stmt := db.WithContext(ctx).Model(&domain.Application{})

	// Stale rows only, unless the caller ignores the freshness flag.
	if !filter.IgnoreIndexed {
		stmt = stmt.Where("elasticindexed = ?", 0)
	}
	if filter.AppID != 0 {
		stmt = stmt.Where("id = ?", filter.AppID)
	}
	switch filter.Status {
	case 1:
		stmt = stmt.Where("registration_number IS NULL OR registration_number = ''")
	case 2:
		stmt = stmt.Where("registration_number IS NOT NULL AND registration_number <> ''")
	}
	if len(filter.ObjTypes) > 0 {
		stmt = stmt.Where("obj_type_id IN ?", filter.ObjTypes)
	}
	if len(filter.IgnoreAppNumbers) > 0 {
		stmt = stmt.Where("app_number NOT IN ?", filter.IgnoreAppNumbers)
	}
	// Rows registered with a future date stay out of the index until the
	// date arrives.
	now := filter.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	stmt = stmt.Where("registration_date IS NULL OR registration_date <= ?", now)

	err := stmt.Order("id asc").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Application, error) {
	var app domain.Application
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repo) MarkIndexed(ctx context.Context, db *gorm.DB, app *domain.Application, indexedAt time.Time) error {
	updates := map[string]interface{}{
		"elasticindexed":       1,
		"last_indexation_date": indexedAt,
		"open_data_updated":    app.OpenDataUpdated,
		"is_limited":           app.IsLimited,
	}
	if app.NotificationDate != nil {
		updates["notification_date"] = app.NotificationDate
	}
	return db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", app.ID).
		Updates(updates).Error
}

func (r *repo) DocumentsByAppID(ctx context.Context, db *gorm.DB, appID int64) ([]*domain.AppDocument, error) {
	var docs []*domain.AppDocument
	err := db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("id asc").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
