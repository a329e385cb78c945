package repository

import (
	"context"
	"errors"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/objtype"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Active(ctx context.Context, db *gorm.DB, appNumber string, objType objtype.ID) (*domain.AppLimited, error) {
	var limited domain.AppLimited
	err := db.WithContext(ctx).
		Where("app_number = ? AND obj_type_id = ? AND cancelled = ?", appNumber, objType, 0).
		First(&limited).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &limited, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, limited *domain.AppLimited) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(limited).Error; err != nil {
			return err
		}
		return markStale(tx, limited.AppNumber, limited.ObjTypeID)
	})
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var limited domain.AppLimited
		if err := tx.Where("id = ?", id).First(&limited).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.AppLimited{}, id).Error; err != nil {
			return err
		}
		return markStale(tx, limited.AppNumber, limited.ObjTypeID)
	})
}

// markStale resets elasticindexed so the next run republishes the
// application with the new restriction state.
func markStale(tx *gorm.DB, appNumber string, objType objtype.ID) error {
	return tx.Model(&appdomain.Application{}).
		Where("app_number = ? AND obj_type_id = ?", appNumber, objType).
		Update("elasticindexed", 0).Error
}
