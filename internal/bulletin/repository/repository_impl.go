package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ukripo/sisindex/internal/bulletin/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, appNumber string, unitID int, publicationDate time.Time) error {
	var row domain.EBulletinData
	err := db.WithContext(ctx).
		Where("app_number = ? AND unit_id = ?", appNumber, unitID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = domain.EBulletinData{
			UnitID:          unitID,
			AppNumber:       appNumber,
			PublicationDate: &publicationDate,
		}
		return db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return err
	}

	row.PublicationDate = &publicationDate
	return db.WithContext(ctx).Save(&row).Error
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, appNumber string, unitID int) (*domain.EBulletinData, error) {
	var row domain.EBulletinData
	err := db.WithContext(ctx).
		Where("app_number = ? AND unit_id = ?", appNumber, unitID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) IssueByDate(ctx context.Context, db *gorm.DB, date time.Time) (*domain.OfficialBulletin, error) {
	var issue domain.OfficialBulletin
	err := db.WithContext(ctx).
		Where("date_from <= ? AND date_to >= ?", date, date).
		First(&issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *repo) IssueByBulDate(ctx context.Context, db *gorm.DB, date time.Time) (*domain.OfficialBulletin, error) {
	var issue domain.OfficialBulletin
	err := db.WithContext(ctx).
		Where("bul_date = ?", date).
		First(&issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}
